package site

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Archive builds the offline package in memory. Files that do not exist are skipped.
func (h *Handler) Archive() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, rel := range OfflineFiles {
		p := h.path(rel)
		if !h.fileMgr.FileExists(p) {
			continue
		}
		data, err := h.fileMgr.ReadFile(p)
		if err != nil {
			return nil, err
		}

		entry, err := zw.Create(rel)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", rel, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", rel, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish archive: %w", err)
	}
	return buf.Bytes(), nil
}
