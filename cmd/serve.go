package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cadastro-rural/internal/adapter/assets"
	"cadastro-rural/internal/adapter/identity"
	"cadastro-rural/internal/adapter/infrastructure/browser"
	"cadastro-rural/internal/adapter/infrastructure/file"
	"cadastro-rural/internal/adapter/infrastructure/network"
	"cadastro-rural/internal/adapter/infrastructure/openssl"
	"cadastro-rural/internal/adapter/infrastructure/x509gen"
	"cadastro-rural/internal/adapter/listener"
	"cadastro-rural/internal/adapter/site"
	"cadastro-rural/internal/bootstrap"
	"cadastro-rural/internal/pkg/config"
	"cadastro-rural/internal/pkg/logging"

	"github.com/spf13/cobra"
)

// probeTimeout bounds the UDP dial used to discover the outbound address.
const probeTimeout = 2 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Provision TLS and serve the application over HTTP and HTTPS",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// newDependencies creates the production adapters for cfg
func newDependencies(cfg *config.Config) bootstrap.Dependencies {
	fileMgr := file.NewManagerAdapter()
	handler := site.NewHandler(cfg.Site.Root, fileMgr)

	return bootstrap.Dependencies{
		Files:     fileMgr,
		Resolver:  identity.NewResolver(&net.Dialer{Timeout: probeTimeout}, network.NewManagerAdapter(), cfg.Identity.ProbeAddress),
		Tool:      openssl.NewToolAdapter(cfg.TLS.OpenSSLPath),
		Generator: x509gen.NewGeneratorAdapter(fileMgr),
		Listeners: listener.NewFactory(handler, cfg.Server.ShutdownTimeout),
		Browser:   browser.NewOpenerAdapter(),
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	// Load and validate configuration
	cfg, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	// Initialize logging
	logging.InitLogger(cfg.Logging)

	logger := logging.GetLogger()
	logger.WithField("config_file", configFlag).Info("Starting server")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	app := bootstrap.New(cfg, newDependencies(cfg), cmd.OutOrStdout())
	if err := app.Run(ctx); err != nil {
		var missing *assets.MissingError
		if errors.As(err, &missing) {
			printMissingAssets(cmd.ErrOrStderr(), missing)
		}
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func printMissingAssets(w io.Writer, missing *assets.MissingError) {
	fmt.Fprintln(w, "\nMissing required files:")
	for _, p := range missing.Paths {
		fmt.Fprintf(w, "   - %s\n", p)
	}
	fmt.Fprintln(w, "\nRun the asset downloader first: python download_dependencies.py")
	fmt.Fprintln(w, "(an internet connection is needed for the initial download)")
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
