//go:build windows

package syslogtx

import (
	"errors"

	"golang.org/x/sys/windows/svc/eventlog"
)

// hostPlatform: Windows logs through the event log API, no socket.
func hostPlatform() platform {
	return platform{
		name: "windows",
		candidates: []candidate{
			{target: nativeTarget(), kind: SocketAuto, format: FormatUser},
		},
		newSink: newEventLogSink,
	}
}

// eventLogSink adapts the Windows event log to the NativeSink
// capability interface. One event log handle is opened per logger
// name; records with an empty logger name use the program identity as
// the event source.
type eventLogSink struct {
	program string
}

func newEventLogSink(program string) (NativeSink, error) {
	return &eventLogSink{program: program}, nil
}

func (s *eventLogSink) OpenHandle(loggerName string) (SinkHandle, error) {
	source := loggerName
	if source == "" {
		source = s.program
	}
	return eventlog.Open(source)
}

func (s *eventLogSink) Write(h SinkHandle, sev Severity, line string) error {
	l, ok := h.(*eventlog.Log)
	if !ok {
		return errors.New("not an event log handle")
	}
	// The event log only knows three classes; collapse the syslog
	// severities onto them.
	switch {
	case sev <= SeverityErr:
		return l.Error(1, line)
	case sev == SeverityWarning:
		return l.Warning(1, line)
	default:
		return l.Info(1, line)
	}
}

func (s *eventLogSink) ReleaseAll(handles map[string]SinkHandle) error {
	var errs []error
	for _, h := range handles {
		if l, ok := h.(*eventlog.Log); ok {
			if err := l.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
