package syslogtx

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog"
)

// channel is the live delivery path bound by target resolution: either
// an open socket or a native-sink handle set.
type channel interface {
	// send delivers one encoded line. Severity and logger name are
	// only consumed by native sinks.
	send(line []byte, sev Severity, loggerName string) error
	close() error
	// socket reports whether the channel writes to a socket; the
	// trailing-NUL option only applies there.
	socket() bool
}

// openUnix creates a unix-domain socket connected to path. With
// SocketAuto, datagram is tried first, then stream; a failed connect
// leaves no handle behind (net.Dial closes on failure).
func openUnix(path string, kind SocketKind) (net.Conn, SocketKind, error) {
	if kind == SocketAuto {
		var lastErr error
		for _, k := range []SocketKind{SocketDatagram, SocketStream} {
			conn, concrete, err := openUnix(path, k)
			if err == nil {
				return conn, concrete, nil
			}
			lastErr = err
		}
		return nil, SocketAuto, lastErr
	}

	network := "unixgram"
	if kind == SocketStream {
		network = "unix"
	}
	conn, err := net.Dial(network, path)
	if err != nil {
		return nil, kind, err
	}
	return conn, kind, nil
}

// openNet creates an internet-domain socket for host:port. With
// SocketAuto, UDP is tried first, then TCP. Name resolution and the
// stream connect are both covered by net.Dial.
func openNet(host string, port uint16, kind SocketKind) (net.Conn, SocketKind, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))

	if kind == SocketAuto {
		var lastErr error
		for _, k := range []SocketKind{SocketDatagram, SocketStream} {
			conn, concrete, err := openNet(host, port, k)
			if err == nil {
				return conn, concrete, nil
			}
			lastErr = err
		}
		return nil, SocketAuto, fmt.Errorf("cannot connect to %s: %w", addr, lastErr)
	}

	network := "udp"
	if kind == SocketStream {
		network = "tcp"
	}
	conn, err := net.Dial(network, addr)
	if err != nil {
		return nil, kind, err
	}
	return conn, kind, nil
}

// socketChannel owns one socket bound to a concrete (target, kind)
// pair. The pair never changes; only the handle is replaced on
// recovery.
type socketChannel struct {
	target Target // targetUnix or targetNet, concrete
	kind   SocketKind
	conn   net.Conn
	log    zerolog.Logger
}

// send writes the line to the socket. On a write error it performs at
// most one reconnect-and-retry; network datagrams carry no connection
// state, so their errors propagate without a reconnect.
func (c *socketChannel) send(line []byte, _ Severity, _ string) error {
	_, err := c.conn.Write(line)
	if err == nil {
		return nil
	}
	if c.target.kind == targetNet && c.kind == SocketDatagram {
		return err
	}

	c.log.Debug().Str("target", c.target.String()).Err(err).
		Msg("syslog write failed, reconnecting")
	c.conn.Close()
	conn, rerr := c.reopen()
	if rerr != nil {
		return fmt.Errorf("reconnect to %s: %w", c.target, rerr)
	}
	c.conn = conn

	_, err = c.conn.Write(line)
	return err
}

// reopen re-runs target initialization with the same concretized
// (target, kind) pair.
func (c *socketChannel) reopen() (net.Conn, error) {
	switch c.target.kind {
	case targetUnix:
		conn, _, err := openUnix(c.target.path, c.kind)
		return conn, err
	case targetNet:
		conn, _, err := openNet(c.target.host, c.target.port, c.kind)
		return conn, err
	}
	return nil, fmt.Errorf("cannot reopen target %s", c.target)
}

func (c *socketChannel) close() error {
	return c.conn.Close()
}

func (c *socketChannel) socket() bool { return true }

// sinkChannel routes to a platform-native sink. Handles are created
// lazily, one per logger name, and the set only grows; everything is
// released together on close.
type sinkChannel struct {
	sink    NativeSink
	handles map[string]SinkHandle
}

func newSinkChannel(sink NativeSink) *sinkChannel {
	return &sinkChannel{sink: sink, handles: make(map[string]SinkHandle)}
}

func (c *sinkChannel) send(line []byte, sev Severity, loggerName string) error {
	h, ok := c.handles[loggerName]
	if !ok {
		var err error
		h, err = c.sink.OpenHandle(loggerName)
		if err != nil {
			return fmt.Errorf("open native log handle for %q: %w", loggerName, err)
		}
		c.handles[loggerName] = h
	}
	return c.sink.Write(h, sev, string(line))
}

func (c *sinkChannel) close() error {
	return c.sink.ReleaseAll(c.handles)
}

func (c *sinkChannel) socket() bool { return false }

var errNoNativeSink = errors.New("native logging sink not available")
