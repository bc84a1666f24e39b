// Package certificate obtains the TLS certificate and key the encrypted listener needs.
//
// Provisioning tries, in order: reuse of existing files, the external openssl
// tool, and in-process generation. Existing files are never checked for
// expiry; delete them to force a new certificate.
package certificate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"
)

var (
	// ErrToolUnavailable marks a failure of the external tool stage.
	ErrToolUnavailable = errors.New("certificate tool unavailable")
	// ErrLibraryUnavailable marks a failure of the in-process stage.
	ErrLibraryUnavailable = errors.New("certificate library unavailable")
)

const (
	ToolKeyBits    = 4096
	LibraryKeyBits = 2048
	ValidFor       = 365 * 24 * time.Hour
)

// Options configures where the material lives and how long the tool may run.
type Options struct {
	CertificatePath string
	PrivateKeyPath  string
	ToolTimeout     time.Duration
	AdditionalIPs   []net.IP // extra SAN entries for the in-process certificate
}

// Provisioner implements the CertificateProvisioner port.
type Provisioner struct {
	opts      Options
	fileMgr   port.FileManager
	tool      port.CertificateTool
	generator port.CertificateGenerator
}

// Ensure Provisioner implements the CertificateProvisioner port
var _ port.CertificateProvisioner = (*Provisioner)(nil)

// NewProvisioner creates a provisioner. tool or generator may be nil, in which
// case that stage reports itself unavailable.
func NewProvisioner(opts Options, fileMgr port.FileManager, tool port.CertificateTool, generator port.CertificateGenerator) *Provisioner {
	return &Provisioner{
		opts:      opts,
		fileMgr:   fileMgr,
		tool:      tool,
		generator: generator,
	}
}

// Material returns the well-known certificate material paths.
func (p *Provisioner) Material() types.CertificateMaterial {
	return types.CertificateMaterial{
		CertificatePath: p.opts.CertificatePath,
		PrivateKeyPath:  p.opts.PrivateKeyPath,
	}
}

// Provision returns existing material, or generates it with the tool and then
// the library. It never fails; an unusable result has OutcomeLibraryUnavailable.
func (p *Provisioner) Provision(ctx context.Context, identity types.NetworkIdentity) types.ProvisionResult {
	logger := logging.WithComponent("certificate").WithField("identity", identity.IPAddress)

	material := p.Material()
	if p.fileMgr.FileExists(material.CertificatePath) && p.fileMgr.FileExists(material.PrivateKeyPath) {
		logger.WithField("cert", material.CertificatePath).Info("Reusing existing TLS certificate")
		return types.ProvisionResult{Outcome: types.OutcomeReused, Material: &material}
	}

	result := p.generateWithTool(ctx, identity)
	if result.Available() {
		logger.WithField("cert", material.CertificatePath).Info("TLS certificate created with openssl")
		return result
	}
	if err := ctx.Err(); err != nil {
		logger.WithError(err).Warn("Provisioning cancelled, no certificate created")
		return types.ProvisionResult{
			Outcome: types.OutcomeLibraryUnavailable,
			Err:     fmt.Errorf("%w: %w", ErrLibraryUnavailable, err),
		}
	}
	logger.WithError(result.Err).Warn("openssl could not create the certificate, trying in-process generation")

	result = p.generateWithLibrary(identity)
	if result.Available() {
		logger.WithField("cert", material.CertificatePath).Info("TLS certificate created in-process")
		return result
	}
	logger.WithError(result.Err).Error("TLS certificate could not be created")
	return result
}

func (p *Provisioner) generateWithTool(ctx context.Context, identity types.NetworkIdentity) types.ProvisionResult {
	if p.tool == nil {
		return types.ProvisionResult{
			Outcome: types.OutcomeToolUnavailable,
			Err:     fmt.Errorf("%w: no tool configured", ErrToolUnavailable),
		}
	}

	if p.opts.ToolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.ToolTimeout)
		defer cancel()
	}

	req := p.request(identity, ToolKeyBits)
	if err := p.tool.Generate(ctx, req); err != nil {
		return types.ProvisionResult{
			Outcome: types.OutcomeToolUnavailable,
			Err:     fmt.Errorf("%w: %w", ErrToolUnavailable, err),
		}
	}

	material := req.Material()
	return types.ProvisionResult{Outcome: types.OutcomeToolGenerated, Material: &material}
}

func (p *Provisioner) generateWithLibrary(identity types.NetworkIdentity) types.ProvisionResult {
	if p.generator == nil {
		return types.ProvisionResult{
			Outcome: types.OutcomeLibraryUnavailable,
			Err:     fmt.Errorf("%w: no generator configured", ErrLibraryUnavailable),
		}
	}

	req := p.request(identity, LibraryKeyBits)
	req.DNSNames = []string{"localhost"}
	req.IPAddresses = subjectAltIPs(identity, p.opts.AdditionalIPs)

	if err := p.generator.Generate(req); err != nil {
		return types.ProvisionResult{
			Outcome: types.OutcomeLibraryUnavailable,
			Err:     fmt.Errorf("%w: %w", ErrLibraryUnavailable, err),
		}
	}

	material := req.Material()
	return types.ProvisionResult{Outcome: types.OutcomeLibraryGenerated, Material: &material}
}

func (p *Provisioner) request(identity types.NetworkIdentity, keyBits int) types.CertificateRequest {
	return types.CertificateRequest{
		CommonName:      identity.IPAddress,
		KeyBits:         keyBits,
		ValidFor:        ValidFor,
		CertificatePath: p.opts.CertificatePath,
		PrivateKeyPath:  p.opts.PrivateKeyPath,
	}
}

// subjectAltIPs puts the identity first, followed by any other distinct address.
func subjectAltIPs(identity types.NetworkIdentity, extra []net.IP) []net.IP {
	var ips []net.IP
	if ip := net.ParseIP(identity.IPAddress); ip != nil {
		ips = append(ips, ip)
	}
	for _, ip := range extra {
		duplicate := false
		for _, have := range ips {
			if have.Equal(ip) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			ips = append(ips, ip)
		}
	}
	return ips
}
