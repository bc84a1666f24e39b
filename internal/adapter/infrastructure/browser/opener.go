// Package browser provides the desktop browser adapter implementation.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"cadastro-rural/internal/port"
)

// OpenerAdapter is an adapter that implements the BrowserOpener port with the platform's URL handler.
type OpenerAdapter struct {
	goos string
}

// Ensure OpenerAdapter implements the BrowserOpener port
var _ port.BrowserOpener = (*OpenerAdapter)(nil)

// NewOpenerAdapter creates a browser opener for the running platform.
func NewOpenerAdapter() *OpenerAdapter {
	return &OpenerAdapter{goos: runtime.GOOS}
}

// Command returns the executable and arguments that open url on goos.
func Command(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default: // linux, freebsd, etc
		return "xdg-open", []string{url}
	}
}

// Open starts the platform handler and reaps it in the background.
func (o *OpenerAdapter) Open(url string) error {
	name, args := Command(o.goos, url)

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}
