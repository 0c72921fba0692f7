package syslogtx

import (
	"errors"
	"fmt"
)

// ErrClosed is reported when Emit is called on a closed handler.
var ErrClosed = errors.New("syslogtx: handler is closed")

// ValidationError is a construction-time error: a facility or wire
// format name that does not map to a known value. It is returned
// before any socket or native-sink resource is touched.
type ValidationError struct {
	Param string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("syslogtx: invalid %s: %q", e.Param, e.Value)
}

// Attempt records one failed target candidate and its cause.
type Attempt struct {
	Target Target
	Kind   SocketKind
	Err    error
}

// TargetUnavailableError is a construction-time error: every candidate
// in the local-target table failed, or the single explicitly requested
// target failed. Attempts carries the per-candidate causes in probe
// order.
type TargetUnavailableError struct {
	Attempts []Attempt
}

func (e *TargetUnavailableError) Error() string {
	if len(e.Attempts) == 0 {
		return "syslogtx: no syslog target available"
	}
	last := e.Attempts[len(e.Attempts)-1]
	return fmt.Sprintf("syslogtx: no syslog target available after %d attempt(s), last: %s: %v",
		len(e.Attempts), last.Target, last.Err)
}

func (e *TargetUnavailableError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return nil
	}
	return e.Attempts[len(e.Attempts)-1].Err
}

// TransportError is a per-record runtime error: a send that failed
// even after the single reconnect-and-retry, or a failed native-sink
// write. It is routed to the handler's ErrorReporter, never returned
// to the Emit caller.
type TransportError struct {
	Target Target
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("syslogtx: send to %s failed: %v", e.Target, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
