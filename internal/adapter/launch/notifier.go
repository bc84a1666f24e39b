// Package launch opens the client view in the operator's browser once the server is up.
package launch

import (
	"context"
	"fmt"
	"time"

	"cadastro-rural/internal/pkg/logging"
	"cadastro-rural/internal/port"
)

// Options configures the notifier.
type Options struct {
	Delay     time.Duration
	HTTPPort  int
	HTTPSPort int
	SecureURL bool // false when TLS is unavailable
}

// Notifier opens the local URL after a delay. Its failures never affect the server.
type Notifier struct {
	opts   Options
	opener port.BrowserOpener
}

// NewNotifier creates a notifier using opener.
func NewNotifier(opts Options, opener port.BrowserOpener) *Notifier {
	return &Notifier{opts: opts, opener: opener}
}

// URLs returns the candidate URLs in the order they are tried.
func (n *Notifier) URLs() []string {
	plain := fmt.Sprintf("http://localhost:%d", n.opts.HTTPPort)
	if !n.opts.SecureURL {
		return []string{plain}
	}
	return []string{fmt.Sprintf("https://localhost:%d", n.opts.HTTPSPort), plain}
}

// Start runs Notify in the background and returns a channel closed when it finishes.
func (n *Notifier) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		n.Notify(ctx)
	}()
	return done
}

// Notify waits for the configured delay, then opens the first URL that the
// browser accepts. It returns the opened URL, or "" when cancelled or when
// every attempt failed.
func (n *Notifier) Notify(ctx context.Context) string {
	logger := logging.WithComponent("launch")

	timer := time.NewTimer(n.opts.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ""
	case <-timer.C:
	}

	for _, url := range n.URLs() {
		if ctx.Err() != nil {
			return ""
		}
		if err := n.opener.Open(url); err != nil {
			logger.WithError(err).WithField("url", url).Debug("Could not open browser")
			continue
		}
		logger.WithField("url", url).Debug("Opened browser")
		return url
	}
	return ""
}
