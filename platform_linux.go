//go:build linux

package syslogtx

// hostPlatform: Linux logs through the syslogd socket at /dev/log,
// falling back to UDP on the registered syslog port.
func hostPlatform() platform {
	return platform{
		name: "linux",
		candidates: []candidate{
			{target: UnixTarget("/dev/log"), kind: SocketDatagram, format: FormatRFC5424},
			{target: NetTarget("localhost", syslogPort), kind: SocketAuto, format: FormatRFC5424},
		},
	}
}
