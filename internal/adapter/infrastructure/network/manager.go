// Package network provides network management adapter implementation.
package network

import (
	"fmt"

	"cadastro-rural/internal/port"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ListLinks returns all network links on the host.
func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// ListAddresses returns IPv4 addresses configured on the link.
func (n *ManagerAdapter) ListAddresses(link netlink.Link) ([]netlink.Addr, error) {
	addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}
