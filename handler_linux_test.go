//go:build linux

package syslogtx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerSurvivesTransportFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.sock")
	server := listenUnixgram(t, path)
	reporter := &recordingReporter{}

	h, err := New(Config{
		Target:   UnixTarget(path),
		Facility: "local0",
		Format:   "pri",
		Reporter: reporter,
	})
	require.NoError(t, err)
	defer h.Close()

	h.Emit(Record{Level: LevelInfo, Message: "before"})
	assert.Equal(t, "<134>before\x00", readDatagram(t, server))

	// Kill the daemon side so both the write and the reconnect fail.
	require.NoError(t, server.Close())
	require.NoError(t, os.Remove(path))

	h.Emit(Record{Level: LevelInfo, Message: "dropped"})

	errs := reporter.reported()
	require.Len(t, errs, 1)
	var terr *TransportError
	require.ErrorAs(t, errs[0], &terr)

	// The handler stays usable: a recovered daemon starts receiving
	// records again on the next emit.
	server2 := listenUnixgram(t, path)
	h.Emit(Record{Level: LevelInfo, Message: "after"})
	assert.Equal(t, "<134>after\x00", readDatagram(t, server2))
	assert.Len(t, reporter.reported(), 1)
}

func TestHandlerLocalTargetOnHostPlatform(t *testing.T) {
	// Exercises the real linux candidate table end to end against a
	// stand-in for /dev/log by pointing the first candidate at a
	// private socket.
	dir := t.TempDir()
	path := filepath.Join(dir, "dev-log.sock")
	server := listenUnixgram(t, path)
	plat := platform{
		name: "linux",
		candidates: []candidate{
			{target: UnixTarget(path), kind: SocketDatagram, format: FormatRFC5424},
			{target: NetTarget("localhost", syslogPort), kind: SocketAuto, format: FormatRFC5424},
		},
	}

	h, err := newHandler(Config{Facility: "daemon", Program: "app1", Hostname: "host1",
		Target: LocalTarget()}, plat)
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, SocketDatagram, h.SocketKind())
	assert.Equal(t, FormatRFC5424, h.Format())

	h.Emit(Record{Level: LevelWarning, Message: "low disk"})
	line := readDatagram(t, server)
	// daemon(3)*8 + warning(4) = 28
	assert.Contains(t, line, "<28>1 ")
	assert.Contains(t, line, " host1 app1 ")
	assert.Contains(t, line, " - low disk\x00")
}
