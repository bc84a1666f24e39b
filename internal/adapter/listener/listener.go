// Package listener implements a single plaintext or encrypted HTTP endpoint.
package listener

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
	"cadastro-rural/internal/types"

	"github.com/sirupsen/logrus"
)

var (
	// ErrBind is returned when the listening socket cannot be opened.
	ErrBind = errors.New("listener bind failed")
	// ErrCertificate is returned when the TLS material cannot be loaded.
	ErrCertificate = errors.New("listener certificate unusable")
)

type protocolKey struct{}

// ProtocolFromContext returns the protocol of the listener that accepted the request.
func ProtocolFromContext(ctx context.Context) (types.Protocol, bool) {
	p, ok := ctx.Value(protocolKey{}).(types.Protocol)
	return p, ok
}

// Listener implements the Listener port on top of net/http.
type Listener struct {
	cfg             types.ListenerConfig
	handler         http.Handler
	shutdownTimeout time.Duration

	state atomic.Int32
	mu    sync.Mutex
	addr  net.Addr
}

// Ensure Listener implements the Listener port
var _ port.Listener = (*Listener)(nil)

// New creates a listener. Encrypted listeners require certificate material.
func New(cfg types.ListenerConfig, handler http.Handler, shutdownTimeout time.Duration) (*Listener, error) {
	if handler == nil {
		return nil, fmt.Errorf("listener %s: handler is required", cfg.Protocol)
	}
	if cfg.Protocol == types.ProtocolEncrypted && cfg.Certificate == nil {
		return nil, fmt.Errorf("listener %s: certificate material is required", cfg.Protocol)
	}
	return &Listener{
		cfg:             cfg,
		handler:         handler,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Protocol returns the protocol served by this listener.
func (l *Listener) Protocol() types.Protocol {
	return l.cfg.Protocol
}

// State returns the current lifecycle state.
func (l *Listener) State() types.ListenerState {
	return types.ListenerState(l.state.Load())
}

// Addr returns the bound address, or nil before the listener is running.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addr
}

func (l *Listener) setState(s types.ListenerState) {
	l.state.Store(int32(s))
}

// Run binds, signals ready and serves until ctx is cancelled.
// On cancellation it returns ctx.Err(); bind and serve failures are returned as errors.
func (l *Listener) Run(ctx context.Context, ready chan<- struct{}) error {
	logger := logging.WithComponentAndListener("listener", l.cfg.Protocol.String()).WithField("address", l.cfg.Address())
	l.setState(types.StateStarting)

	ln, err := l.listen()
	if err != nil {
		l.setState(types.StateFailed)
		return err
	}

	errorLog := logger.WriterLevel(logrus.DebugLevel)
	defer errorLog.Close()

	server := &http.Server{
		Handler:           l.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          log.New(errorLog, "", 0),
		BaseContext: func(net.Listener) context.Context {
			return context.WithValue(context.Background(), protocolKey{}, l.cfg.Protocol)
		},
	}

	l.mu.Lock()
	l.addr = ln.Addr()
	l.mu.Unlock()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	l.setState(types.StateRunning)
	logger.WithField("bound", ln.Addr().String()).Info("Listener running")
	if ready != nil {
		close(ready)
	}

	select {
	case <-ctx.Done():
		l.stop(server, logger)
		<-serveErr
		l.setState(types.StateStopped)
		logger.Info("Listener stopped")
		return ctx.Err()
	case err := <-serveErr:
		l.setState(types.StateFailed)
		return fmt.Errorf("listener %s: serve: %w", l.cfg.Protocol, err)
	}
}

// listen opens the socket and wraps it in TLS for the encrypted protocol.
func (l *Listener) listen() (net.Listener, error) {
	var tlsConfig *tls.Config
	if l.cfg.Protocol == types.ProtocolEncrypted {
		cert, err := tls.LoadX509KeyPair(l.cfg.Certificate.CertificatePath, l.cfg.Certificate.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCertificate, err)
		}
		tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			NextProtos:   []string{"h2", "http/1.1"},
		}
	}

	ln, err := net.Listen("tcp", l.cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBind, l.cfg.Address(), err)
	}

	if tlsConfig != nil {
		return tls.NewListener(ln, tlsConfig), nil
	}
	return ln, nil
}

// stop drains for at most shutdownTimeout, then closes remaining connections.
func (l *Listener) stop(server *http.Server, logger *logrus.Entry) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), l.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Warn("Listener did not drain in time, closing connections")
		server.Close()
	}
}

// Factory implements the ListenerFactory port for a shared application handler.
type Factory struct {
	handler         http.Handler
	shutdownTimeout time.Duration
}

// Ensure Factory implements the ListenerFactory port
var _ port.ListenerFactory = (*Factory)(nil)

// NewFactory creates a factory whose listeners all serve handler.
func NewFactory(handler http.Handler, shutdownTimeout time.Duration) *Factory {
	return &Factory{handler: handler, shutdownTimeout: shutdownTimeout}
}

// New creates a listener for cfg.
func (f *Factory) New(cfg types.ListenerConfig) (port.Listener, error) {
	l, err := New(cfg, f.handler, f.shutdownTimeout)
	if err != nil {
		return nil, err
	}
	return l, nil
}
