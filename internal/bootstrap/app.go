// Package bootstrap wires the collaborators together and runs the startup sequence.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"cadastro-rural/internal/adapter/assets"
	"cadastro-rural/internal/adapter/certificate"
	"cadastro-rural/internal/adapter/launch"
	"cadastro-rural/internal/adapter/supervisor"
	"cadastro-rural/internal/pkg/config"
	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
)

// Dependencies are the adapters the application is assembled from.
// Tool, Generator and Browser may be nil.
type Dependencies struct {
	Files     port.FileManager
	Resolver  port.IdentityResolver
	Tool      port.CertificateTool
	Generator port.CertificateGenerator
	Listeners port.ListenerFactory
	Browser   port.BrowserOpener
}

// App is the application context: configuration plus collaborators.
type App struct {
	cfg  *config.Config
	deps Dependencies
	out  io.Writer

	supervisor *supervisor.Supervisor
}

// New creates the application. The banner is written to out, or stdout when out is nil.
func New(cfg *config.Config, deps Dependencies, out io.Writer) *App {
	if out == nil {
		out = os.Stdout
	}
	sup := supervisor.NewSupervisor(supervisor.Options{
		BindAddress:  cfg.Server.BindAddress,
		HTTPPort:     cfg.Server.HTTPPort,
		HTTPSPort:    cfg.Server.HTTPSPort,
		ReadyTimeout: cfg.Server.ReadyTimeout,
		Console:      out,
	}, deps.Listeners)

	return &App{cfg: cfg, deps: deps, out: out, supervisor: sup}
}

// Supervisor returns the listener supervisor.
func (a *App) Supervisor() *supervisor.Supervisor {
	return a.supervisor
}

// Run checks the required assets, resolves the network identity, provisions
// TLS, prints the banner and serves until ctx is cancelled. A missing asset
// returns *assets.MissingError before anything else happens.
func (a *App) Run(ctx context.Context) error {
	logger := logging.WithComponent("bootstrap")

	checker := assets.NewChecker(a.deps.Files, a.cfg.Site.Root, a.cfg.Site.RequiredAssets)
	if err := checker.Check(); err != nil {
		return err
	}

	identity := a.deps.Resolver.Resolve()
	lan := a.deps.Resolver.LANAddresses()
	logger.WithField("identity", identity.String()).WithField("lan_addresses", len(lan)).Info("Network identity resolved")

	var provisioner port.CertificateProvisioner = certificate.NewProvisioner(certificate.Options{
		CertificatePath: a.cfg.TLS.CertFile,
		PrivateKeyPath:  a.cfg.TLS.KeyFile,
		ToolTimeout:     a.cfg.TLS.ToolTimeout,
		AdditionalIPs:   lan,
	}, a.deps.Files, a.deps.Tool, a.deps.Generator)
	result := provisioner.Provision(ctx, identity)
	logger.WithField("outcome", result.Outcome.String()).Info("TLS provisioning finished")

	banner := Banner{
		Identity:  identity,
		LAN:       lan,
		HTTPPort:  a.cfg.Server.HTTPPort,
		HTTPSPort: a.cfg.Server.HTTPSPort,
		Secure:    supervisor.ModeFor(result) == supervisor.ModeFull,
	}
	if err := banner.Write(a.out); err != nil {
		logger.WithError(err).Debug("Could not write banner")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.cfg.Launch.Enabled && a.deps.Browser != nil {
		notifier := launch.NewNotifier(launch.Options{
			Delay:     a.cfg.Launch.Delay,
			HTTPPort:  a.cfg.Server.HTTPPort,
			HTTPSPort: a.cfg.Server.HTTPSPort,
			SecureURL: banner.Secure,
		}, a.deps.Browser)
		done := notifier.Start(runCtx)
		defer func() { <-done }()
		// cancel runs before the wait above
		defer cancel()
	}

	if err := a.supervisor.Run(runCtx, result); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}
