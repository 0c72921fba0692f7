package syslogtx

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The reference record used throughout: facility local0 (16), severity
// info (6), so PRI 134.
var (
	testTime = time.Unix(1704164645, 123456000)
	testPri  = 134
)

func TestFormatLine(t *testing.T) {
	t.Run("rfc5424", func(t *testing.T) {
		line := formatLine(FormatRFC5424, testPri, testTime, "host1", "app1", 42, "hello")
		assert.Equal(t, "<134>1 2024-01-02T03:04:05.123456Z host1 app1 42 - hello", line)
	})

	t.Run("rfc3164", func(t *testing.T) {
		line := formatLine(FormatRFC3164, testPri, testTime, "host1", "app1", 42, "hello")
		assert.Equal(t, "<134> 2024-01-02T03:04:05.123456Z host1 hello", line)
	})

	t.Run("pri", func(t *testing.T) {
		line := formatLine(FormatPri, testPri, testTime, "host1", "app1", 42, "hello")
		assert.Equal(t, "<134>hello", line)
	})

	t.Run("user returns the message unchanged", func(t *testing.T) {
		line := formatLine(FormatUser, testPri, testTime, "host1", "app1", 42, "hello")
		assert.Equal(t, "hello", line)
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Run("renders UTC with microseconds", func(t *testing.T) {
		assert.Equal(t, "2024-01-02T03:04:05.123456Z", formatTimestamp(testTime))
	})

	t.Run("converts non-UTC input", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		local := testTime.In(loc)
		assert.Equal(t, "2024-01-02T03:04:05.123456Z", formatTimestamp(local))
	})

	t.Run("pads short fractions", func(t *testing.T) {
		ts := time.Date(2024, 1, 2, 3, 4, 5, 1000, time.UTC)
		assert.Equal(t, "2024-01-02T03:04:05.000001Z", formatTimestamp(ts))
	})
}

func TestEncodePriority(t *testing.T) {
	for f := FacilityKern; f <= FacilityLocal7; f++ {
		for s := SeverityEmerg; s <= SeverityDebug; s++ {
			want := int(f)*8 + int(s)
			assert.Equal(t, want, EncodePriority(f, s),
				fmt.Sprintf("facility=%d severity=%d", f, s))
		}
	}
	assert.Equal(t, 134, EncodePriority(FacilityLocal0, SeverityInfo))
}

func TestParseWireFormat(t *testing.T) {
	cases := map[string]WireFormat{
		"":        FormatAuto,
		"user":    FormatUser,
		"pri":     FormatPri,
		"rfc3164": FormatRFC3164,
		"rfc5424": FormatRFC5424,
	}
	for name, want := range cases {
		got, err := ParseWireFormat(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseWireFormat("rfc9999")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Equal(t, "format", verr.Param)
	})
}
