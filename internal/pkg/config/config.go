package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cadastro-rural/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// ServerConfig represents the listener configuration
type ServerConfig struct {
	BindAddress     string        `yaml:"bind_address"`
	HTTPPort        int           `yaml:"http_port"`
	HTTPSPort       int           `yaml:"https_port"`
	ReadyTimeout    time.Duration `yaml:"ready_timeout"`    // how long to wait for the HTTPS listener before starting HTTP
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // best-effort drain on interrupt
}

// TLSConfig represents certificate provisioning configuration
type TLSConfig struct {
	CertFile    string        `yaml:"cert_file"`
	KeyFile     string        `yaml:"key_file"`
	OpenSSLPath string        `yaml:"openssl_path"`
	ToolTimeout time.Duration `yaml:"tool_timeout"`
}

// SiteConfig represents the served application files
type SiteConfig struct {
	Root           string   `yaml:"root"`
	RequiredAssets []string `yaml:"required_assets"`
}

// LaunchConfig represents the browser launch behaviour
type LaunchConfig struct {
	Enabled bool          `yaml:"enabled"`
	Delay   time.Duration `yaml:"delay"`
}

// IdentityConfig represents network identity probing
type IdentityConfig struct {
	ProbeAddress string `yaml:"probe_address"`
}

// Config represents the main configuration structure
type Config struct {
	Logging  logging.LogConfig `yaml:"logging"`
	Server   ServerConfig      `yaml:"server"`
	TLS      TLSConfig         `yaml:"tls"`
	Site     SiteConfig        `yaml:"site"`
	Launch   LaunchConfig      `yaml:"launch"`
	Identity IdentityConfig    `yaml:"identity"`
}

// DefaultRequiredAssets are the static files the application cannot run without.
var DefaultRequiredAssets = []string{
	"static/css/bootstrap.min.css",
	"static/css/bootstrap-icons.css",
	"static/js/bootstrap.bundle.min.js",
	"static/js/alpine.min.js",
	"static/js/jszip.min.js",
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	assets := make([]string, len(DefaultRequiredAssets))
	copy(assets, DefaultRequiredAssets)

	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			BindAddress:     "0.0.0.0",
			HTTPPort:        8000,
			HTTPSPort:       8443,
			ReadyTimeout:    2 * time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		TLS: TLSConfig{
			CertFile:    "server.crt",
			KeyFile:     "server.key",
			OpenSSLPath: "openssl",
			ToolTimeout: 60 * time.Second,
		},
		Site: SiteConfig{
			Root:           ".",
			RequiredAssets: assets,
		},
		Launch: LaunchConfig{
			Enabled: true,
			Delay:   2 * time.Second,
		},
		Identity: IdentityConfig{
			ProbeAddress: "8.8.8.8:80",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validatePort("http_port", c.Server.HTTPPort); err != nil {
		return err
	}
	if err := validatePort("https_port", c.Server.HTTPSPort); err != nil {
		return err
	}
	if c.Server.HTTPPort == c.Server.HTTPSPort {
		return fmt.Errorf("server: http_port and https_port must differ (both %d)", c.Server.HTTPPort)
	}
	if c.Server.BindAddress == "" {
		return fmt.Errorf("server: bind_address is required")
	}
	if c.Server.ReadyTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server: timeouts must not be negative")
	}

	if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
		return fmt.Errorf("tls: cert_file and key_file are required")
	}
	if c.TLS.CertFile == c.TLS.KeyFile {
		return fmt.Errorf("tls: cert_file and key_file must be different paths")
	}
	if c.TLS.ToolTimeout < 0 {
		return fmt.Errorf("tls: tool_timeout must not be negative")
	}

	if c.Site.Root == "" {
		return fmt.Errorf("site: root is required")
	}
	if len(c.Site.RequiredAssets) == 0 {
		return fmt.Errorf("site: at least one required asset must be listed")
	}

	if c.Launch.Delay < 0 {
		return fmt.Errorf("launch: delay must not be negative")
	}
	if c.Identity.ProbeAddress == "" {
		return fmt.Errorf("identity: probe_address is required")
	}

	return nil
}

// SitePath resolves a path relative to the site root
func (c *Config) SitePath(rel string) string {
	return filepath.Join(c.Site.Root, filepath.FromSlash(rel))
}

func validatePort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("server: %s %d out of range 1-65535", name, port)
	}
	return nil
}
