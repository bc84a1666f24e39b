package bootstrap

import (
	"fmt"
	"io"
	"net"
	"strings"

	"cadastro-rural/internal/types"
)

const rule = "================================================================================"

// Endpoint is a URL shown to the operator.
type Endpoint struct {
	Label string
	URL   string
}

// Banner summarises where the application can be reached.
type Banner struct {
	Identity  types.NetworkIdentity
	LAN       []net.IP
	HTTPPort  int
	HTTPSPort int
	Secure    bool
}

// Endpoints lists the live endpoints, HTTPS first when TLS is available.
func (b Banner) Endpoints() []Endpoint {
	var endpoints []Endpoint
	if b.Secure {
		endpoints = append(endpoints,
			Endpoint{Label: "HTTPS local", URL: fmt.Sprintf("https://localhost:%d", b.HTTPSPort)},
			Endpoint{Label: "HTTPS network", URL: fmt.Sprintf("https://%s:%d", b.Identity.IPAddress, b.HTTPSPort)},
		)
	}
	endpoints = append(endpoints,
		Endpoint{Label: "HTTP local", URL: fmt.Sprintf("http://localhost:%d", b.HTTPPort)},
		Endpoint{Label: "HTTP network", URL: fmt.Sprintf("http://%s:%d", b.Identity.IPAddress, b.HTTPPort)},
	)

	for _, ip := range b.LAN {
		if ip.String() == b.Identity.IPAddress {
			continue
		}
		if b.Secure {
			endpoints = append(endpoints, Endpoint{Label: "HTTPS LAN", URL: fmt.Sprintf("https://%s:%d", ip, b.HTTPSPort)})
		}
		endpoints = append(endpoints, Endpoint{Label: "HTTP LAN", URL: fmt.Sprintf("http://%s:%d", ip, b.HTTPPort)})
	}
	return endpoints
}

// Write prints the banner.
func (b Banner) Write(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("\n" + rule + "\n")
	sb.WriteString("CADASTRO DE PRODUTORES RURAIS\n")
	sb.WriteString(rule + "\n")
	if b.Secure {
		sb.WriteString("HTTPS enabled\n")
	} else {
		sb.WriteString("HTTP only: TLS certificate unavailable\n")
	}
	for _, e := range b.Endpoints() {
		fmt.Fprintf(&sb, "  %-14s %s\n", e.Label+":", e.URL)
	}
	sb.WriteString(rule + "\n")
	if b.Secure {
		sb.WriteString("Geolocation works over HTTPS. Accept the self-signed certificate in the browser.\n")
		sb.WriteString("Mobile devices should use the HTTPS network address.\n")
	} else {
		sb.WriteString("WARNING: degraded mode. Geolocation only works on localhost without HTTPS.\n")
		sb.WriteString("Configure TLS to use geolocation from mobile devices.\n")
	}
	sb.WriteString("Press Ctrl+C to stop\n")
	sb.WriteString(rule + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
