// Package openssl provides the external certificate tool adapter implementation.
package openssl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"
)

// ErrToolNotFound is returned when the openssl binary cannot be located.
var ErrToolNotFound = errors.New("openssl not found")

// SubjectTemplate is the distinguished name handed to openssl; %s is the common name.
const SubjectTemplate = "/C=BR/ST=CE/L=Local/O=Dev/OU=Cadastro/CN=%s"

// ToolAdapter is an adapter that implements the CertificateTool port by running `openssl req`.
type ToolAdapter struct {
	path string
}

// Ensure ToolAdapter implements the CertificateTool port
var _ port.CertificateTool = (*ToolAdapter)(nil)

// NewToolAdapter creates a tool adapter for the given binary name or path.
func NewToolAdapter(path string) *ToolAdapter {
	if path == "" {
		path = "openssl"
	}
	return &ToolAdapter{path: path}
}

// Args returns the openssl arguments for a self-signed certificate request.
func Args(req types.CertificateRequest) []string {
	days := int(req.ValidFor.Hours() / 24)
	if days < 1 {
		days = 1
	}
	return []string{
		"req", "-x509",
		"-newkey", "rsa:" + strconv.Itoa(req.KeyBits),
		"-keyout", req.PrivateKeyPath,
		"-out", req.CertificatePath,
		"-days", strconv.Itoa(days),
		"-nodes",
		"-subj", fmt.Sprintf(SubjectTemplate, req.CommonName),
	}
}

// Generate runs openssl and reports success by its exit status.
func (t *ToolAdapter) Generate(ctx context.Context, req types.CertificateRequest) error {
	path, err := exec.LookPath(t.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, Args(req)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("openssl req failed: %w: %s", err, msg)
		}
		return fmt.Errorf("openssl req failed: %w", err)
	}
	return nil
}
