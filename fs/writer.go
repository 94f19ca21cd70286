// Package fs implements a filesystem record sink.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/storecrawl"
)

// Ensure JSONSink implements storecrawl.RecordSink at compile time.
var _ storecrawl.RecordSink = (*JSONSink)(nil)

// JSONSink writes the full record set as a single JSON array. Each Store
// call replaces the file with atomic rename semantics, so readers never see
// a partially written file.
type JSONSink struct {
	path string
}

// NewJSONSink creates a sink that writes to path. Parent directories are
// created on first store.
func NewJSONSink(path string) *JSONSink {
	return &JSONSink{path: path}
}

// Store writes records to the configured path. A nil or empty record set
// writes an empty JSON array.
func (s *JSONSink) Store(ctx context.Context, records []*storecrawl.ProductRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []*storecrawl.ProductRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
