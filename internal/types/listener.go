package types

import (
	"net"
	"strconv"
)

// Protocol is the wire protocol served by a listener.
type Protocol int

const (
	// ProtocolPlaintext serves HTTP.
	ProtocolPlaintext Protocol = iota
	// ProtocolEncrypted serves HTTPS with the provisioned certificate.
	ProtocolEncrypted
)

// Scheme returns the URL scheme for the protocol.
func (p Protocol) Scheme() string {
	if p == ProtocolEncrypted {
		return "https"
	}
	return "http"
}

func (p Protocol) String() string {
	return p.Scheme()
}

// ListenerConfig is the immutable configuration of a single listener.
type ListenerConfig struct {
	Protocol    Protocol
	BindAddress string // e.g., "0.0.0.0"
	Port        int
	Certificate *CertificateMaterial // required for ProtocolEncrypted
}

// Address returns the host:port the listener binds to.
func (c ListenerConfig) Address() string {
	return net.JoinHostPort(c.BindAddress, strconv.Itoa(c.Port))
}

// ListenerState is the lifecycle state of a listener.
type ListenerState int32

const (
	// StateNotStarted is the state before Run is called.
	StateNotStarted ListenerState = iota
	// StateStarting means the socket is being opened.
	StateStarting
	// StateRunning means the listener accepts connections.
	StateRunning
	// StateStopped means the listener shut down after cancellation.
	StateStopped
	// StateFailed means binding or serving failed.
	StateFailed
)

func (s ListenerState) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
