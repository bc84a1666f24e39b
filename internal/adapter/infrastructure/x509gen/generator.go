// Package x509gen provides in-process self-signed certificate generation.
package x509gen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"
	"time"

	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"
)

// GeneratorAdapter is an adapter that implements the CertificateGenerator port using crypto/x509.
type GeneratorAdapter struct {
	fileMgr port.FileManager
	random  io.Reader
	now     func() time.Time
}

// Ensure GeneratorAdapter implements the CertificateGenerator port
var _ port.CertificateGenerator = (*GeneratorAdapter)(nil)

// NewGeneratorAdapter creates a generator writing its output through fileMgr.
func NewGeneratorAdapter(fileMgr port.FileManager) *GeneratorAdapter {
	return &GeneratorAdapter{
		fileMgr: fileMgr,
		random:  rand.Reader,
		now:     time.Now,
	}
}

// Subject returns the distinguished name used as both subject and issuer.
func Subject(commonName string) pkix.Name {
	return pkix.Name{
		Country:      []string{"BR"},
		Province:     []string{"CE"},
		Locality:     []string{"Local"},
		Organization: []string{"Cadastro Rural"},
		CommonName:   commonName,
	}
}

// Generate creates an RSA key and a self-signed certificate and writes both as PEM.
func (g *GeneratorAdapter) Generate(req types.CertificateRequest) error {
	privateKey, err := rsa.GenerateKey(g.random, req.KeyBits)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	serialNumber, err := rand.Int(g.random, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return fmt.Errorf("generate serial: %w", err)
	}

	notBefore := g.now().UTC()
	template := &x509.Certificate{
		SerialNumber:          serialNumber,
		Subject:               Subject(req.CommonName),
		Issuer:                Subject(req.CommonName),
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(req.ValidFor),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              req.DNSNames,
		IPAddresses:           req.IPAddresses,
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}

	certDER, err := x509.CreateCertificate(g.random, template, template, &privateKey.PublicKey, privateKey)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	keyDER, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})

	if err := g.fileMgr.WriteFile(req.PrivateKeyPath, keyPEM, 0600); err != nil {
		return fmt.Errorf("write key: %w", err)
	}
	if err := g.fileMgr.WriteFile(req.CertificatePath, certPEM, 0644); err != nil {
		return fmt.Errorf("write cert: %w", err)
	}
	return nil
}
