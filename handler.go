package syslogtx

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Record is one log record handed to Emit by the calling logging
// framework, which is expected to have formatted the message already.
type Record struct {
	// Level is mapped to a syslog severity through the fixed level
	// table.
	Level Level
	// Message is the formatted message body.
	Message string
	// Time is the record timestamp; the zero value means now. Always
	// rendered in UTC.
	Time time.Time
	// PID is the logical process id; zero means the current process.
	PID int
	// Logger is the logger/category name. Only native sinks consume
	// it, for handle demultiplexing.
	Logger string
}

// ErrorReporter receives per-record delivery failures. Mirrors the
// logging-framework convention of logging the logging failure instead
// of crashing the application.
type ErrorReporter interface {
	Report(rec Record, err error)
}

// ErrorReporterFunc adapts a function to the ErrorReporter interface.
type ErrorReporterFunc func(rec Record, err error)

func (f ErrorReporterFunc) Report(rec Record, err error) { f(rec, err) }

// Config carries the construction parameters for a Handler. The zero
// value targets localhost:514 with facility user, an auto-probed
// socket kind and the target-appropriate wire format.
type Config struct {
	// Target is the destination. The zero value means localhost:514;
	// see LocalTarget, UnixTarget and NetTarget.
	Target Target

	// Facility is the syslog facility, as a symbolic name ("local0")
	// or a decimal code ("16"). Empty means "user". Unknown names fail
	// construction with a *ValidationError.
	Facility string

	// SocketKind hints the transport socket type for socket targets.
	SocketKind SocketKind

	// Program is the program identity placed in the rfc5424 app-name
	// field and used by native sinks. Empty means the base name of the
	// running executable.
	Program string

	// Format selects the wire format: "user", "pri", "rfc3164",
	// "rfc5424", or empty for the target-appropriate default. Unknown
	// names fail construction with a *ValidationError.
	Format string

	// OmitTrailingNul disables the 0x00 byte appended after non-user
	// formats on socket transports. Some older collectors require the
	// NUL, so it is on by default.
	OmitTrailingNul bool

	// Hostname overrides the hostname placed in rfc3164/rfc5424
	// lines. Empty means os.Hostname, falling back to "localhost".
	Hostname string

	// NativeSink overrides the platform's native sink. Required on
	// darwin to bridge the unified logging system; also the seam for
	// tests.
	NativeSink NativeSink

	// Reporter receives per-record delivery failures. Defaults to a
	// zerolog console logger on stderr.
	Reporter ErrorReporter

	// Logger receives resolution and reconnect diagnostics. Defaults
	// to a disabled logger.
	Logger *zerolog.Logger
}

// Handler delivers records to one bound syslog target. The bound
// (target, socket kind, wire format) triple is fixed at construction;
// only the underlying handle is replaced on transport recovery.
//
// A Handler is safe for concurrent use; a per-instance mutex guards
// the channel across Emit and Close.
type Handler struct {
	facility  Facility
	program   string
	hostname  string
	format    WireFormat
	kind      SocketKind
	appendNul bool
	reporter  ErrorReporter
	log       zerolog.Logger

	mu     sync.Mutex
	ch     channel
	closed bool
}

// New validates the configuration, resolves a working target and
// returns an active handler. Validation errors and target resolution
// failures surface here; no handler is returned on failure.
func New(cfg Config) (*Handler, error) {
	return newHandler(cfg, hostPlatform())
}

func newHandler(cfg Config, plat platform) (*Handler, error) {
	facility := FacilityUser
	if cfg.Facility != "" {
		f, err := ParseFacility(cfg.Facility)
		if err != nil {
			return nil, err
		}
		facility = f
	}
	format, err := ParseWireFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	program := cfg.Program
	if program == "" {
		program = filepath.Base(os.Args[0])
	}
	hostname := cfg.Hostname
	if hostname == "" {
		hostname, _ = os.Hostname()
		if hostname == "" {
			hostname = "localhost"
		}
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	if cfg.NativeSink != nil {
		sink := cfg.NativeSink
		plat.newSink = func(string) (NativeSink, error) { return sink, nil }
	}

	b, err := resolve(plat, cfg.Target, cfg.SocketKind, format, program, log)
	if err != nil {
		return nil, err
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = defaultReporter()
	}

	return &Handler{
		facility:  facility,
		program:   program,
		hostname:  hostname,
		format:    b.format,
		kind:      b.kind,
		appendNul: !cfg.OmitTrailingNul,
		reporter:  reporter,
		log:       log,
		ch:        b.ch,
	}, nil
}

// defaultReporter logs dropped records to stderr.
func defaultReporter() ErrorReporter {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	return ErrorReporterFunc(func(rec Record, err error) {
		logger.Error().Err(err).Str("level", rec.Level.String()).
			Str("message", rec.Message).Msg("log record dropped")
	})
}

// Emit formats the record and delivers it to the bound target. Any
// formatting or delivery failure, including a send that failed after
// the single reconnect-retry, is routed to the error reporter; Emit
// never fails the caller and the handler stays usable for subsequent
// records.
func (h *Handler) Emit(rec Record) {
	if err := h.emit(rec); err != nil {
		h.reporter.Report(rec, err)
	}
}

func (h *Handler) emit(rec Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}

	sev := severityFor(rec.Level)
	pri := priority(h.facility, sev)
	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	pid := rec.PID
	if pid == 0 {
		pid = os.Getpid()
	}

	line := []byte(formatLine(h.format, pri, ts, h.hostname, h.program, pid, rec.Message))
	if h.appendNul && h.format != FormatUser && h.ch.socket() {
		line = append(line, 0)
	}

	if err := h.ch.send(line, sev, rec.Logger); err != nil {
		return &TransportError{Target: h.target(), Err: err}
	}
	return nil
}

// target reconstructs the bound target for error reporting. Must be
// called with h.mu held.
func (h *Handler) target() Target {
	if sc, ok := h.ch.(*socketChannel); ok {
		return sc.target
	}
	return nativeTarget()
}

// Facility returns the validated facility code.
func (h *Handler) Facility() Facility { return h.facility }

// Format returns the concretized wire format.
func (h *Handler) Format() WireFormat { return h.format }

// SocketKind returns the concretized socket kind. For native sinks it
// is the kind that was requested, there being no socket to concretize.
func (h *Handler) SocketKind() SocketKind { return h.kind }

// Close releases the socket or the full native-sink handle set.
// Idempotent: the first call tears the channel down, later calls
// return nil without touching it. Emit after Close reports ErrClosed
// through the error reporter.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	return h.ch.close()
}
