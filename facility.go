package syslogtx

import (
	"fmt"
	"strconv"
	"sync"
)

// Severity is a syslog severity code as defined in RFC 5424 section
// 6.2.1.
type Severity int

const (
	SeverityEmerg   Severity = 0 // system is unusable
	SeverityAlert   Severity = 1 // action must be taken immediately
	SeverityCrit    Severity = 2 // critical conditions
	SeverityErr     Severity = 3 // error conditions
	SeverityWarning Severity = 4 // warning conditions
	SeverityNotice  Severity = 5 // normal but significant condition
	SeverityInfo    Severity = 6 // informational
	SeverityDebug   Severity = 7 // debug-level messages
)

// Facility is a syslog facility code as defined in RFC 5424 section
// 6.2.1.
type Facility int

const (
	FacilityKern     Facility = 0  // kernel messages
	FacilityUser     Facility = 1  // random user-level messages
	FacilityMail     Facility = 2  // mail system
	FacilityDaemon   Facility = 3  // system daemons
	FacilityAuth     Facility = 4  // security/authorization messages
	FacilitySyslog   Facility = 5  // messages generated internally by syslogd
	FacilityLpr      Facility = 6  // line printer subsystem
	FacilityNews     Facility = 7  // network news subsystem
	FacilityUUCP     Facility = 8  // UUCP subsystem
	FacilityCron     Facility = 9  // clock daemon
	FacilityAuthpriv Facility = 10 // security/authorization messages (private)
	FacilityFTP      Facility = 11 // FTP daemon
	FacilityNTP      Facility = 12 // NTP subsystem
	FacilitySecurity Facility = 13 // log audit
	FacilityConsole  Facility = 14 // log alert
	FacilitySolCron  Facility = 15 // scheduling daemon (Solaris)
	FacilityLocal0   Facility = 16
	FacilityLocal1   Facility = 17
	FacilityLocal2   Facility = 18
	FacilityLocal3   Facility = 19
	FacilityLocal4   Facility = 20
	FacilityLocal5   Facility = 21
	FacilityLocal6   Facility = 22
	FacilityLocal7   Facility = 23
)

var facilityNames = map[string]Facility{
	"kern":         FacilityKern,
	"user":         FacilityUser,
	"mail":         FacilityMail,
	"daemon":       FacilityDaemon,
	"auth":         FacilityAuth,
	"syslog":       FacilitySyslog,
	"lpr":          FacilityLpr,
	"news":         FacilityNews,
	"uucp":         FacilityUUCP,
	"cron":         FacilityCron,
	"authpriv":     FacilityAuthpriv,
	"ftp":          FacilityFTP,
	"ntp":          FacilityNTP,
	"security":     FacilitySecurity,
	"console":      FacilityConsole,
	"solaris-cron": FacilitySolCron,
	"local0":       FacilityLocal0,
	"local1":       FacilityLocal1,
	"local2":       FacilityLocal2,
	"local3":       FacilityLocal3,
	"local4":       FacilityLocal4,
	"local5":       FacilityLocal5,
	"local6":       FacilityLocal6,
	"local7":       FacilityLocal7,
}

// ParseFacility maps a facility name or a decimal facility code to its
// Facility. It accepts the 24 symbolic names from RFC 5424 ("kern",
// "user", ... "local7") as well as "0" through "23".
func ParseFacility(s string) (Facility, error) {
	if f, ok := facilityNames[s]; ok {
		return f, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		f := Facility(n)
		if f < FacilityKern || f > FacilityLocal7 {
			return 0, &ValidationError{Param: "facility", Value: s}
		}
		return f, nil
	}
	return 0, &ValidationError{Param: "facility", Value: s}
}

func (f Facility) String() string {
	for name, code := range facilityNames {
		if code == f {
			return name
		}
	}
	return fmt.Sprintf("facility(%d)", int(f))
}

// Level is the record level supplied by the calling logging framework.
// Each level maps to exactly one syslog severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelCritical:
		return "critical"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// severityByLevel is process-wide immutable configuration, built once
// on first use and read-shared afterwards.
var severityByLevel = sync.OnceValue(func() map[Level]Severity {
	return map[Level]Severity{
		LevelDebug:    SeverityDebug,
		LevelInfo:     SeverityInfo,
		LevelWarning:  SeverityWarning,
		LevelError:    SeverityErr,
		LevelCritical: SeverityCrit,
	}
})

func severityFor(l Level) Severity {
	sev, ok := severityByLevel()[l]
	if !ok {
		// Unknown levels are treated as informational rather than
		// dropped; the record still carries its message.
		return SeverityInfo
	}
	return sev
}

// priority combines a facility and a severity into the RFC 5424 PRI
// value (0..191). Computed per record, never stored.
func priority(f Facility, s Severity) int {
	return int(f)<<3 | int(s)
}
