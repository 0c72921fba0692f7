package syslogtx

// SinkHandle is an opaque per-logger handle owned by a NativeSink.
type SinkHandle any

// NativeSink is the capability interface for platform-native logging
// services that are reached through an API instead of a socket
// (unified logging, the Windows event log).
//
// The handler owns the handle lifecycle: handles are created lazily
// through OpenHandle, one per logger name, cached for the lifetime of
// the handler, and released together through ReleaseAll exactly once
// when the handler is closed.
type NativeSink interface {
	// OpenHandle creates the handle for one logger name.
	OpenHandle(loggerName string) (SinkHandle, error)

	// Write delivers one encoded line at the given severity through a
	// handle previously returned by OpenHandle.
	Write(h SinkHandle, sev Severity, line string) error

	// ReleaseAll releases every handle created so far. Called once at
	// handler close.
	ReleaseAll(handles map[string]SinkHandle) error
}
