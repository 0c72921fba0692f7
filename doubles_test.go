package syslogtx

import (
	"errors"
	"net"
	"sync"
	"time"
)

// fakeSink records every native-sink interaction.
type fakeSink struct {
	opened   int
	writes   []string
	released []map[string]SinkHandle
	openErr  error
	writeErr error
}

type fakeHandle struct {
	name string
}

func (s *fakeSink) OpenHandle(loggerName string) (SinkHandle, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opened++
	return &fakeHandle{name: loggerName}, nil
}

func (s *fakeSink) Write(h SinkHandle, sev Severity, line string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, h.(*fakeHandle).name+"|"+line)
	return nil
}

func (s *fakeSink) ReleaseAll(handles map[string]SinkHandle) error {
	s.released = append(s.released, handles)
	return nil
}

// errWriteFailed is what failingConn returns from Write.
var errWriteFailed = errors.New("write failed")

// failingConn is a net.Conn whose writes always fail, standing in for
// a stale socket handle.
type failingConn struct{}

func (failingConn) Read([]byte) (int, error)         { return 0, errors.New("not readable") }
func (failingConn) Write([]byte) (int, error)        { return 0, errWriteFailed }
func (failingConn) Close() error                     { return nil }
func (failingConn) LocalAddr() net.Addr              { return nil }
func (failingConn) RemoteAddr() net.Addr             { return nil }
func (failingConn) SetDeadline(time.Time) error      { return nil }
func (failingConn) SetReadDeadline(time.Time) error  { return nil }
func (failingConn) SetWriteDeadline(time.Time) error { return nil }

// recordingReporter captures per-record failures handed to it.
type recordingReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *recordingReporter) Report(_ Record, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingReporter) reported() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}
