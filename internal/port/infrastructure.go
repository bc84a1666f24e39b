// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -destination=../mock/infrastructure.go -package=mock cadastro-rural/internal/port NetworkManager,FileManager,PacketDialer,BrowserOpener

import (
	"net"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for network interface inspection.
// This interface abstracts the netlink calls used to enumerate local addresses.
type NetworkManager interface {
	// ListLinks returns all network links on the host
	ListLinks() ([]netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// PacketDialer is a port for opening the connectionless probe socket.
// *net.Dialer satisfies it.
type PacketDialer interface {
	Dial(network, address string) (net.Conn, error)
}

// BrowserOpener is a port for opening a URL in the operator's browser.
type BrowserOpener interface {
	// Open asks the desktop environment to show the URL
	Open(url string) error
}
