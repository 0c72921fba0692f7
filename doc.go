// Package syslogtx delivers structured log records to a system log
// facility: a local syslog daemon, a remote collector over UDP or TCP,
// or a platform-native logging service where no socket exists.
//
// A Handler is bound to exactly one target at construction time. When
// the target is the special "local" destination, an ordered
// platform-specific candidate list is probed and the first working
// candidate wins; explicit targets are tried exactly once. Messages
// are encoded in one of four wire formats (raw, legacy <PRI>,
// RFC 3164, RFC 5424) and broken sockets are reconnected transparently,
// at most once per send.
//
// Delivery failures never reach the caller of Emit. They are routed to
// an ErrorReporter so that a failing log pipeline cannot take the
// application down with it.
package syslogtx
