package syslogtx

import (
	"github.com/rs/zerolog"
)

// platform describes one member of the closed set of supported
// platform variants: its name, the ordered local-target candidate
// table, and (where the platform logs through a native API instead of
// a socket) the native sink constructor.
type platform struct {
	name       string
	candidates []candidate
	newSink    func(program string) (NativeSink, error)
}

// binding is the outcome of target resolution: the live channel plus
// the concretized socket kind and wire format, all fixed for the
// handler's lifetime.
type binding struct {
	ch     channel
	kind   SocketKind
	format WireFormat
}

// resolve binds a channel for the requested target. The local target
// walks the platform's candidate table and stops at the first success;
// an explicit target is tried exactly once. Every failed candidate is
// recorded as an (candidate, cause) attempt and logged; if nothing
// succeeds the accumulated attempts are returned as a
// *TargetUnavailableError.
func resolve(plat platform, target Target, kind SocketKind, format WireFormat, program string, log zerolog.Logger) (binding, error) {
	candidates := []candidate{{target: target, kind: kind, format: format}}
	if target.kind == targetLocal {
		candidates = plat.candidates
	}

	var attempts []Attempt
	for _, c := range candidates {
		b, err := openCandidate(plat, c, program, log)
		if err != nil {
			attempts = append(attempts, Attempt{Target: c.target, Kind: c.kind, Err: err})
			log.Debug().Str("platform", plat.name).Str("target", c.target.String()).
				Str("socket", c.kind.String()).Err(err).
				Msg("syslog candidate failed")
			continue
		}
		log.Debug().Str("platform", plat.name).Str("target", c.target.String()).
			Str("socket", b.kind.String()).Str("format", b.format.String()).
			Msg("syslog target bound")
		return b, nil
	}
	return binding{}, &TargetUnavailableError{Attempts: attempts}
}

// openCandidate attempts full initialization of one candidate triple.
// A failed attempt leaves no live handle behind.
func openCandidate(plat platform, c candidate, program string, log zerolog.Logger) (binding, error) {
	target := c.target
	if target.kind == targetDefault {
		target = NetTarget("localhost", syslogPort)
	}

	switch target.kind {
	case targetNative:
		if plat.newSink == nil {
			return binding{}, errNoNativeSink
		}
		sink, err := plat.newSink(program)
		if err != nil {
			return binding{}, err
		}
		format := c.format
		if format == FormatAuto {
			format = FormatUser
		}
		// Handles are created lazily per logger name at send time;
		// nothing else to probe here.
		return binding{ch: newSinkChannel(sink), kind: c.kind, format: format}, nil

	case targetUnix:
		conn, concrete, err := openUnix(target.path, c.kind)
		if err != nil {
			return binding{}, err
		}
		return binding{
			ch:     &socketChannel{target: target, kind: concrete, conn: conn, log: log},
			kind:   concrete,
			format: socketFormat(c.format),
		}, nil

	default: // targetNet
		conn, concrete, err := openNet(target.host, target.port, c.kind)
		if err != nil {
			return binding{}, err
		}
		return binding{
			ch:     &socketChannel{target: target, kind: concrete, conn: conn, log: log},
			kind:   concrete,
			format: socketFormat(c.format),
		}, nil
	}
}

// socketFormat concretizes FormatAuto for socket targets.
func socketFormat(f WireFormat) WireFormat {
	if f == FormatAuto {
		return FormatRFC5424
	}
	return f
}
