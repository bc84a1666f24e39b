// Package types defines common types used across the application.
package types

// LoopbackAddress is the identity used when no outbound route can be probed.
const LoopbackAddress = "127.0.0.1"

// NetworkIdentity is the LAN-reachable address of this host.
// It is resolved once at startup and never changes afterwards.
type NetworkIdentity struct {
	IPAddress string // dotted-quad IPv4 (e.g., "192.168.0.12")
}

// IsLoopback reports whether the identity fell back to the loopback address.
func (n NetworkIdentity) IsLoopback() bool {
	return n.IPAddress == LoopbackAddress
}

func (n NetworkIdentity) String() string {
	return n.IPAddress
}
