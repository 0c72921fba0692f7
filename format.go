package syslogtx

import (
	"fmt"
	"time"
)

// WireFormat selects the on-the-wire layout of an encoded record.
type WireFormat int

const (
	// FormatAuto picks a target-appropriate default during target
	// resolution: user for native sinks, rfc5424 for sockets. It is
	// never observed after construction.
	FormatAuto WireFormat = iota
	// FormatUser sends the message verbatim; the upstream formatter is
	// expected to have produced the complete line already.
	FormatUser
	// FormatPri prepends "<PRI>" to the message and nothing else.
	FormatPri
	// FormatRFC3164 is the BSD syslog format of RFC 3164.
	FormatRFC3164
	// FormatRFC5424 is the syslog protocol format of RFC 5424, with
	// the message-id field fixed to "-" and no structured data.
	FormatRFC5424
)

// ParseWireFormat maps a format name to its WireFormat. The empty
// string selects FormatAuto.
func ParseWireFormat(s string) (WireFormat, error) {
	switch s {
	case "":
		return FormatAuto, nil
	case "user":
		return FormatUser, nil
	case "pri":
		return FormatPri, nil
	case "rfc3164":
		return FormatRFC3164, nil
	case "rfc5424":
		return FormatRFC5424, nil
	}
	return 0, &ValidationError{Param: "format", Value: s}
}

func (f WireFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatUser:
		return "user"
	case FormatPri:
		return "pri"
	case FormatRFC3164:
		return "rfc3164"
	case FormatRFC5424:
		return "rfc5424"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// formatLine encodes one record into the selected wire format. Pure
// and deterministic; no I/O.
func formatLine(f WireFormat, pri int, ts time.Time, hostname, program string, pid int, msg string) string {
	switch f {
	case FormatUser:
		return msg
	case FormatPri:
		return fmt.Sprintf("<%d>%s", pri, msg)
	case FormatRFC3164:
		return fmt.Sprintf("<%d> %s %s %s", pri, formatTimestamp(ts), hostname, msg)
	default:
		return fmt.Sprintf("<%d>1 %s %s %s %d - %s", pri, formatTimestamp(ts), hostname, program, pid, msg)
	}
}

// formatTimestamp renders a timestamp for the RFC 3164/5424 layouts:
// ISO-8601 in UTC with microsecond precision and a literal Z suffix,
// regardless of the local timezone.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000Z")
}

// EncodePriority returns facility*8 + severity.
//
// Deprecated: legacy compatibility shim kept for callers of the old
// handler-level helper. New code has no reason to compute PRI values
// itself.
func EncodePriority(f Facility, s Severity) int {
	return priority(f, s)
}

// SeverityForLevel maps a record level to its syslog severity.
//
// Deprecated: legacy compatibility shim; the handler applies this
// mapping itself on every Emit.
func SeverityForLevel(l Level) Severity {
	return severityFor(l)
}
