// Package supervisor runs the plaintext and encrypted listeners side by side.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"
)

// Mode is the operating mode chosen from the provisioning result.
type Mode int

const (
	// ModeFull runs both the encrypted and the plaintext listener.
	ModeFull Mode = iota
	// ModeDegraded runs only the plaintext listener; geolocation is unavailable.
	ModeDegraded
)

func (m Mode) String() string {
	if m == ModeFull {
		return "full"
	}
	return "degraded"
}

// ModeFor maps a provisioning result to an operating mode.
func ModeFor(result types.ProvisionResult) Mode {
	switch result.Outcome {
	case types.OutcomeReused, types.OutcomeToolGenerated, types.OutcomeLibraryGenerated:
		if result.Material != nil {
			return ModeFull
		}
	}
	return ModeDegraded
}

// Options configures the listeners.
type Options struct {
	BindAddress  string
	HTTPPort     int
	HTTPSPort    int
	ReadyTimeout time.Duration // wait for the encrypted listener before starting plaintext

	// Console, when set, is told that HTTPS endpoints already announced are not live.
	Console io.Writer
}

// Supervisor starts the listeners for a provisioning result and owns their lifecycle.
type Supervisor struct {
	opts    Options
	factory port.ListenerFactory

	mu        sync.Mutex
	listeners []port.Listener
}

// NewSupervisor creates a supervisor building listeners through factory.
func NewSupervisor(opts Options, factory port.ListenerFactory) *Supervisor {
	return &Supervisor{opts: opts, factory: factory}
}

// Plan returns the listener configurations for a result, encrypted first.
func (s *Supervisor) Plan(result types.ProvisionResult) []types.ListenerConfig {
	plaintext := types.ListenerConfig{
		Protocol:    types.ProtocolPlaintext,
		BindAddress: s.opts.BindAddress,
		Port:        s.opts.HTTPPort,
	}
	if ModeFor(result) == ModeDegraded {
		return []types.ListenerConfig{plaintext}
	}

	material := *result.Material
	encrypted := types.ListenerConfig{
		Protocol:    types.ProtocolEncrypted,
		BindAddress: s.opts.BindAddress,
		Port:        s.opts.HTTPSPort,
		Certificate: &material,
	}
	return []types.ListenerConfig{encrypted, plaintext}
}

// Listeners returns the listeners created so far.
func (s *Supervisor) Listeners() []port.Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]port.Listener(nil), s.listeners...)
}

func (s *Supervisor) track(l port.Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Run starts the listeners and blocks until ctx is cancelled or the plaintext
// listener fails. A failing encrypted listener is reported and otherwise ignored.
// Run returns only after every listener has exited.
func (s *Supervisor) Run(ctx context.Context, result types.ProvisionResult) error {
	logger := logging.WithComponent("supervisor").WithField("mode", ModeFor(result).String())

	runCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	var plaintext types.ListenerConfig
	for _, cfg := range s.Plan(result) {
		if cfg.Protocol == types.ProtocolPlaintext {
			plaintext = cfg
			continue
		}
		s.startEncrypted(runCtx, cfg, &wg)
	}

	if ModeFor(result) == ModeDegraded {
		logger.WithError(result.Err).Warn("TLS unavailable, serving HTTP only; geolocation needs a secure context")
	}

	l, err := s.factory.New(plaintext)
	if err != nil {
		return fmt.Errorf("plaintext listener: %w", err)
	}
	s.track(l)

	if err := l.Run(runCtx, nil); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).WithField("address", plaintext.Address()).Error("HTTP listener failed")
		return fmt.Errorf("plaintext listener: %w", err)
	}

	logger.Info("All listeners stopped")
	return nil
}

// startEncrypted launches the encrypted listener and waits for it to come up,
// fail, or exceed the ready timeout. Its failure never stops the supervisor.
func (s *Supervisor) startEncrypted(ctx context.Context, cfg types.ListenerConfig, wg *sync.WaitGroup) {
	logger := logging.WithComponentAndListener("supervisor", cfg.Protocol.String()).WithField("address", cfg.Address())

	l, err := s.factory.New(cfg)
	if err != nil {
		logger.WithError(err).Error("Could not create HTTPS listener")
		s.announceEncryptedDown(err)
		return
	}
	s.track(l)

	ready := make(chan struct{})
	failed := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := l.Run(ctx, ready); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("HTTPS listener failed")
			s.announceEncryptedDown(err)
			failed <- err
		}
	}()

	timer := time.NewTimer(s.opts.ReadyTimeout)
	defer timer.Stop()

	select {
	case <-ready:
		logger.Debug("HTTPS listener ready")
	case <-failed:
	case <-timer.C:
		logger.WithField("timeout", s.opts.ReadyTimeout.String()).Warn("HTTPS listener not ready yet, starting HTTP anyway")
	case <-ctx.Done():
	}
}

// announceEncryptedDown corrects the operator banner after an HTTPS failure.
func (s *Supervisor) announceEncryptedDown(err error) {
	if s.opts.Console == nil {
		return
	}
	fmt.Fprintf(s.opts.Console, "HTTPS unavailable on port %d (%v); only the HTTP endpoints are live\n", s.opts.HTTPSPort, err)
}
