package syslogtx

import (
	"fmt"
	"net"
	"strconv"
)

// SocketKind selects the transport socket type.
type SocketKind int

const (
	// SocketAuto probes: unix-domain paths try datagram then stream,
	// network endpoints try UDP then TCP. Always concretized to
	// SocketDatagram or SocketStream once a target is bound.
	SocketAuto SocketKind = iota
	SocketDatagram
	SocketStream
)

func (k SocketKind) String() string {
	switch k {
	case SocketAuto:
		return "auto"
	case SocketDatagram:
		return "datagram"
	case SocketStream:
		return "stream"
	}
	return fmt.Sprintf("socketkind(%d)", int(k))
}

type targetKind int

const (
	// The zero Target means "no target configured" and resolves to
	// localhost:514 over the network.
	targetDefault targetKind = iota
	targetLocal
	targetUnix
	targetNet
	targetNative
)

// Target is the destination of a handler: the special local
// destination, a unix-domain socket path, or a network endpoint.
// Immutable after resolution.
type Target struct {
	kind targetKind
	path string
	host string
	port uint16
}

// LocalTarget selects the local system log. The platform's ordered
// candidate list is probed and the first working candidate wins.
func LocalTarget() Target {
	return Target{kind: targetLocal}
}

// UnixTarget selects a unix-domain socket at the given path.
func UnixTarget(path string) Target {
	return Target{kind: targetUnix, path: path}
}

// NetTarget selects a network endpoint.
func NetTarget(host string, port uint16) Target {
	return Target{kind: targetNet, host: host, port: port}
}

// nativeTarget marks a platform-native sink candidate (no socket).
// Only candidate tables produce it; there is no public constructor
// because native sinks are only reachable through LocalTarget.
func nativeTarget() Target {
	return Target{kind: targetNative}
}

func (t Target) String() string {
	switch t.kind {
	case targetLocal:
		return "local"
	case targetUnix:
		return t.path
	case targetNet:
		return net.JoinHostPort(t.host, strconv.Itoa(int(t.port)))
	case targetNative:
		return "native"
	}
	return net.JoinHostPort("localhost", strconv.Itoa(syslogPort))
}

// syslogPort is the registered syslog port, used for both UDP and TCP.
const syslogPort = 514

// candidate is one (target, socket kind, wire format) triple from a
// platform's ordered local-target table.
type candidate struct {
	target Target
	kind   SocketKind
	format WireFormat
}
