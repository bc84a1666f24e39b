package types

import (
	"net"
	"time"
)

// CertificateMaterial points at a PEM certificate and private key on disk.
// When both files exist the pair is assumed to be usable; nothing here parses them.
type CertificateMaterial struct {
	CertificatePath string
	PrivateKeyPath  string
}

// CertificateRequest describes the self-signed certificate to produce.
// It is shared by the external tool and the in-process generator.
type CertificateRequest struct {
	CommonName      string
	KeyBits         int
	ValidFor        time.Duration
	CertificatePath string
	PrivateKeyPath  string
	DNSNames        []string
	IPAddresses     []net.IP
}

// Material returns the certificate material the request will produce.
func (r CertificateRequest) Material() CertificateMaterial {
	return CertificateMaterial{
		CertificatePath: r.CertificatePath,
		PrivateKeyPath:  r.PrivateKeyPath,
	}
}

// ProvisionOutcome tags the result of a provisioning stage.
type ProvisionOutcome int

const (
	// OutcomeReused means existing files were found and returned as-is.
	OutcomeReused ProvisionOutcome = iota
	// OutcomeToolGenerated means the external tool produced the files.
	OutcomeToolGenerated
	// OutcomeLibraryGenerated means the in-process generator produced the files.
	OutcomeLibraryGenerated
	// OutcomeToolUnavailable means the external tool is missing or failed.
	OutcomeToolUnavailable
	// OutcomeLibraryUnavailable means the in-process generator failed.
	// As a final provisioning result it means no certificate is available.
	OutcomeLibraryUnavailable
)

func (o ProvisionOutcome) String() string {
	switch o {
	case OutcomeReused:
		return "reused"
	case OutcomeToolGenerated:
		return "tool"
	case OutcomeLibraryGenerated:
		return "library"
	case OutcomeToolUnavailable:
		return "tool-unavailable"
	case OutcomeLibraryUnavailable:
		return "library-unavailable"
	default:
		return "unknown"
	}
}

// ProvisionResult is the tagged result of a provisioning attempt.
// Material is set only for the reused/tool/library outcomes.
type ProvisionResult struct {
	Outcome  ProvisionOutcome
	Material *CertificateMaterial
	Err      error
}

// Available reports whether the result carries usable certificate material.
func (r ProvisionResult) Available() bool {
	switch r.Outcome {
	case OutcomeReused, OutcomeToolGenerated, OutcomeLibraryGenerated:
		return r.Material != nil
	default:
		return false
	}
}
