package port

//go:generate mockgen -destination=../mock/certificate.go -package=mock cadastro-rural/internal/port CertificateTool,CertificateGenerator

import (
	"context"

	"cadastro-rural/internal/types"
)

// CertificateTool is a port for an external certificate-generation command.
type CertificateTool interface {
	// Generate writes a self-signed certificate and key for the request.
	// It returns an error if the tool is missing or exits non-zero.
	Generate(ctx context.Context, req types.CertificateRequest) error
}

// CertificateGenerator is a port for in-process certificate generation.
type CertificateGenerator interface {
	// Generate creates, signs and writes a self-signed certificate and key.
	Generate(req types.CertificateRequest) error
}

// CertificateProvisioner obtains certificate material for a network identity.
// It never fails the caller; unavailability is reported in the result.
type CertificateProvisioner interface {
	Provision(ctx context.Context, identity types.NetworkIdentity) types.ProvisionResult
}
