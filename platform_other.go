//go:build !linux && !darwin && !windows

package syslogtx

// hostPlatform: on platforms without a known native log service, the
// only local candidate is UDP to the registered syslog port.
func hostPlatform() platform {
	return platform{
		name: "other",
		candidates: []candidate{
			{target: NetTarget("localhost", syslogPort), kind: SocketAuto, format: FormatRFC5424},
		},
	}
}
