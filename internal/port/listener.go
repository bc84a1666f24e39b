package port

//go:generate mockgen -destination=../mock/listener.go -package=mock cadastro-rural/internal/port Listener,ListenerFactory,IdentityResolver

import (
	"context"
	"net"

	"cadastro-rural/internal/types"
)

// Listener is the primary port for a single serving endpoint.
// Implementations (plaintext, encrypted) host the same application handler.
type Listener interface {
	// Run binds the endpoint, closes ready once it accepts connections and
	// serves until the context is cancelled. A bind failure is returned
	// before ready is closed.
	Run(ctx context.Context, ready chan<- struct{}) error

	// Protocol returns the protocol served by this listener.
	Protocol() types.Protocol

	// State returns the current lifecycle state.
	State() types.ListenerState

	// Addr returns the bound address, or nil before the listener is running.
	Addr() net.Addr
}

// ListenerFactory creates listeners from their configuration.
type ListenerFactory interface {
	New(cfg types.ListenerConfig) (Listener, error)
}

// IdentityResolver determines the host's network identity.
type IdentityResolver interface {
	// Resolve never fails; it falls back to the loopback address.
	Resolve() types.NetworkIdentity

	// LANAddresses returns every up, non-loopback IPv4 address on the host.
	LANAddresses() []net.IP
}
