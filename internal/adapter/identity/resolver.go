// Package identity resolves the LAN-reachable address of this host.
package identity

import (
	"net"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"

	"github.com/vishvananda/netlink"
)

// Resolver implements the IdentityResolver port.
// It learns the outbound address by opening a UDP socket toward a public
// address; no packet is sent, the kernel only selects a route.
type Resolver struct {
	dialer       port.PacketDialer
	networkMgr   port.NetworkManager
	probeAddress string
}

// Ensure Resolver implements the IdentityResolver port
var _ port.IdentityResolver = (*Resolver)(nil)

// NewResolver creates a resolver probing toward probeAddress (e.g., "8.8.8.8:80").
func NewResolver(dialer port.PacketDialer, networkMgr port.NetworkManager, probeAddress string) *Resolver {
	return &Resolver{
		dialer:       dialer,
		networkMgr:   networkMgr,
		probeAddress: probeAddress,
	}
}

// Resolve returns the local address chosen for the route to the probe address,
// or the loopback address on any failure. It never fails.
func (r *Resolver) Resolve() types.NetworkIdentity {
	logger := logging.WithComponent("identity").WithField("probe", r.probeAddress)

	conn, err := r.dialer.Dial("udp4", r.probeAddress)
	if err != nil {
		logger.WithError(err).Warn("Outbound probe failed, using loopback address")
		return types.NetworkIdentity{IPAddress: types.LoopbackAddress}
	}
	defer conn.Close()

	udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || udpAddr.IP.To4() == nil || udpAddr.IP.IsUnspecified() {
		logger.WithField("local_addr", conn.LocalAddr()).Warn("Probe returned no usable IPv4 address, using loopback address")
		return types.NetworkIdentity{IPAddress: types.LoopbackAddress}
	}

	ip := udpAddr.IP.To4().String()
	logger.WithField("ip", ip).Debug("Resolved network identity")
	return types.NetworkIdentity{IPAddress: ip}
}

// LANAddresses returns the IPv4 addresses of every up, non-loopback link.
// Errors are logged and yield whatever was collected so far.
func (r *Resolver) LANAddresses() []net.IP {
	logger := logging.WithComponent("identity")

	links, err := r.networkMgr.ListLinks()
	if err != nil {
		logger.WithError(err).Debug("Could not enumerate network links")
		return nil
	}

	seen := make(map[string]bool)
	var ips []net.IP
	for _, link := range links {
		attrs := link.Attrs()
		if attrs == nil || attrs.Flags&net.FlagLoopback != 0 || attrs.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := r.networkMgr.ListAddresses(link)
		if err != nil {
			logger.WithError(err).WithField("link", attrs.Name).Debug("Could not list link addresses")
			continue
		}
		for _, addr := range usableAddresses(addrs) {
			if key := addr.String(); !seen[key] {
				seen[key] = true
				ips = append(ips, addr)
			}
		}
	}
	return ips
}

func usableAddresses(addrs []netlink.Addr) []net.IP {
	var ips []net.IP
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		ip := addr.IPNet.IP.To4()
		if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
			continue
		}
		ips = append(ips, ip)
	}
	return ips
}
