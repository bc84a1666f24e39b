//go:build integration
// +build integration

package test

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

// requiredAssets mirrors the default required asset list
var requiredAssets = []string{
	"static/css/bootstrap.min.css",
	"static/css/bootstrap-icons.css",
	"static/js/bootstrap.bundle.min.js",
	"static/js/alpine.min.js",
	"static/js/jszip.min.js",
}

// TestServerIntegration builds the binary, starts it against a temporary site
// and checks both endpoints, the certificate files and a clean interrupt.
func TestServerIntegration(t *testing.T) {
	binary := buildBinary(t)
	siteDir := createSite(t, requiredAssets)
	httpPort, httpsPort := freePort(t), freePort(t)
	configPath := writeConfig(t, siteDir, httpPort, httpsPort)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binary, "serve", "--config", configPath)
	cmd.Dir = siteDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// stdout and stderr are only read once done is closed
	var exitErr error
	done := make(chan struct{})
	go func() {
		exitErr = cmd.Wait()
		close(done)
	}()

	stop := func() {
		select {
		case <-done:
		default:
			cmd.Process.Kill()
			<-done
		}
	}
	t.Cleanup(stop)

	client := &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
	}

	t.Run("HTTP_Serves_Index", func(t *testing.T) {
		body, err := waitForURL(client, fmt.Sprintf("http://127.0.0.1:%d/", httpPort), 30*time.Second)
		if err != nil {
			stop()
			t.Fatalf("HTTP endpoint did not come up: %v\nstdout:\n%s\nstderr:\n%s", err, stdout.String(), stderr.String())
		}
		if !strings.Contains(body, "cadastro") {
			t.Errorf("Unexpected index body: %q", body)
		}
	})

	t.Run("HTTPS_Serves_Manifest", func(t *testing.T) {
		body, err := waitForURL(client, fmt.Sprintf("https://127.0.0.1:%d/manifest.webmanifest", httpsPort), 10*time.Second)
		if err != nil {
			t.Fatalf("HTTPS endpoint did not come up: %v", err)
		}
		if !strings.Contains(body, "Cadastro Rural") {
			t.Errorf("Unexpected manifest: %q", body)
		}
	})

	t.Run("Certificate_Files_Created", func(t *testing.T) {
		for _, name := range []string{"server.crt", "server.key"} {
			if _, err := os.Stat(filepath.Join(siteDir, name)); err != nil {
				t.Errorf("Expected %s to exist: %v", name, err)
			}
		}
	})

	t.Run("Interrupt_Exits_Cleanly", func(t *testing.T) {
		if err := cmd.Process.Signal(syscall.SIGINT); err != nil {
			t.Fatalf("Failed to signal server: %v", err)
		}
		select {
		case <-done:
			if exitErr != nil {
				t.Errorf("Server exited with error after interrupt: %v\nstderr:\n%s", exitErr, stderr.String())
			}
		case <-time.After(15 * time.Second):
			t.Fatal("Server did not stop after interrupt")
		}
	})

	stop()
	if !strings.Contains(stdout.String(), fmt.Sprintf("https://localhost:%d", httpsPort)) {
		t.Errorf("Banner does not list the HTTPS endpoint:\n%s", stdout.String())
	}
}

// TestMissingAssetsIntegration checks that a missing asset aborts startup with exit code 1
func TestMissingAssetsIntegration(t *testing.T) {
	binary := buildBinary(t)
	siteDir := createSite(t, requiredAssets[:4])
	configPath := writeConfig(t, siteDir, freePort(t), freePort(t))

	var stderr bytes.Buffer
	cmd := exec.Command(binary, "--config", configPath)
	cmd.Dir = siteDir
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "   - static/js/jszip.min.js") {
		t.Errorf("Missing asset not listed:\n%s", stderr.String())
	}
	if strings.Contains(stderr.String(), "   - static/js/alpine.min.js") {
		t.Errorf("Present asset listed as missing:\n%s", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(siteDir, "server.crt")); err == nil {
		t.Error("Certificate must not be created when assets are missing")
	}
}

// buildBinary compiles the server from the project root
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "cadastro-rural")
	cmd := exec.Command("go", "build", "-o", binary, ".")
	cmd.Dir = filepath.Join("..") // Go up one directory to project root
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\n%s", err, output)
	}
	return binary
}

// createSite writes an index page plus the given assets into a temporary site root
func createSite(t *testing.T, assets []string) string {
	t.Helper()
	dir := t.TempDir()
	files := append([]string{"index.html"}, assets...)
	for _, rel := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, []byte("<!-- cadastro "+rel+" -->"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return dir
}

// writeConfig writes a config that binds to loopback and never opens a browser
func writeConfig(t *testing.T, siteDir string, httpPort, httpsPort int) string {
	t.Helper()
	content := fmt.Sprintf(`logging:
  level: debug
  format: simple
server:
  bind_address: 127.0.0.1
  http_port: %d
  https_port: %d
  ready_timeout: 5s
  shutdown_timeout: 2s
tls:
  cert_file: %s
  key_file: %s
site:
  root: %s
launch:
  enabled: false
`, httpPort, httpsPort,
		filepath.Join(siteDir, "server.crt"),
		filepath.Join(siteDir, "server.key"),
		siteDir)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// freePort asks the kernel for an unused TCP port
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

// waitForURL polls url until it answers 200 or the timeout expires
func waitForURL(client *http.Client, url string, timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK && readErr == nil {
				return string(body), nil
			}
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
		} else {
			lastErr = err
		}
		time.Sleep(200 * time.Millisecond)
	}
	return "", fmt.Errorf("timed out waiting for %s: %w", url, lastErr)
}
