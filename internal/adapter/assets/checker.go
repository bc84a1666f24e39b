// Package assets verifies that the static files the application needs are on disk.
package assets

import (
	"fmt"
	"path/filepath"
	"strings"

	"cadastro-rural/internal/port"
)

// MissingError lists required assets that were not found, in configured order.
type MissingError struct {
	Paths []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing %d required asset(s): %s", len(e.Paths), strings.Join(e.Paths, ", "))
}

// Checker checks a fixed list of paths relative to the site root.
type Checker struct {
	fileMgr  port.FileManager
	root     string
	required []string
}

// NewChecker creates a checker for required paths below root.
func NewChecker(fileMgr port.FileManager, root string, required []string) *Checker {
	return &Checker{fileMgr: fileMgr, root: root, required: required}
}

// Missing returns the required paths that do not exist, in configured order.
func (c *Checker) Missing() []string {
	var missing []string
	for _, rel := range c.required {
		if !c.fileMgr.FileExists(filepath.Join(c.root, filepath.FromSlash(rel))) {
			missing = append(missing, rel)
		}
	}
	return missing
}

// Check returns a *MissingError when any required path is absent.
func (c *Checker) Check() error {
	if missing := c.Missing(); len(missing) > 0 {
		return &MissingError{Paths: missing}
	}
	return nil
}
