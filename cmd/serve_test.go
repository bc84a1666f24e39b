//go:build unit

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"cadastro-rural/internal/adapter/assets"
	"cadastro-rural/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMissingAssets(t *testing.T) {
	var buf bytes.Buffer
	printMissingAssets(&buf, &assets.MissingError{Paths: []string{"static/js/alpine.min.js", "static/js/jszip.min.js"}})

	out := buf.String()
	assert.Contains(t, out, "   - static/js/alpine.min.js\n   - static/js/jszip.min.js\n")
	assert.Contains(t, out, "download_dependencies.py")
}

func TestNewDependencies(t *testing.T) {
	deps := newDependencies(config.Default())

	assert.NotNil(t, deps.Files)
	assert.NotNil(t, deps.Resolver)
	assert.NotNil(t, deps.Tool)
	assert.NotNil(t, deps.Generator)
	assert.NotNil(t, deps.Listeners)
	assert.NotNil(t, deps.Browser)
}

func TestRootCommand_ConfigErrors(t *testing.T) {
	t.Cleanup(func() { configFlag = "" })

	t.Run("MissingFile", func(t *testing.T) {
		rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")})
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetErr(&bytes.Buffer{})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config error")
	})

	t.Run("Version", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetArgs([]string{"version"})
		rootCmd.SetOut(&out)

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "Tag: ")
		assert.Contains(t, out.String(), "Commit: ")
	})
}
