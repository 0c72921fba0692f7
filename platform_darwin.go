//go:build darwin

package syslogtx

// hostPlatform: macOS logs through the unified logging system, which
// is an API rather than a socket. The os_log bridge is cgo territory
// and must be supplied by the caller through Config.NativeSink; when
// none is registered, resolution falls through to the legacy Apple
// system log socket.
func hostPlatform() platform {
	return platform{
		name: "darwin",
		candidates: []candidate{
			{target: nativeTarget(), kind: SocketAuto, format: FormatUser},
			{target: UnixTarget("/var/run/syslog"), kind: SocketDatagram, format: FormatUser},
		},
	}
}
