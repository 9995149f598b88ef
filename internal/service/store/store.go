// Package store archives raw result documents to a local results
// directory, one file per ingested document.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Archive writes each ingested raw result document to disk. An empty
// directory disables archiving. A process-wide sequence number keeps
// names unique when two documents arrive within the same second.
type Archive struct {
	dir     string
	counter uint64
	now     func() time.Time
}

// New creates an Archive rooted at dir. An empty dir disables it.
func New(dir string) *Archive {
	return &Archive{dir: dir, now: time.Now}
}

// Enabled reports whether archiving is configured.
func (a *Archive) Enabled() bool {
	return a.dir != ""
}

// Save writes one raw result document and returns the filename used.
// Returns ("", nil) when archiving is disabled.
func (a *Archive) Save(raw []byte) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("archive: create results dir: %w", err)
	}

	n := atomic.AddUint64(&a.counter, 1)
	ts := a.now().UTC().Format("20060102_150405")
	name := fmt.Sprintf("transcript_%s_%d.json", ts, n)

	if err := os.WriteFile(filepath.Join(a.dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("archive: write result: %w", err)
	}
	return name, nil
}
