// Package audit records every AI API call as an append-only JSONL log under
// the .flora directory. Entries are never rewritten; downstream tooling can
// label or grade them by appending follow-up entries.
package audit

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	// FileName is the audit log file name stored under .flora/.
	FileName = "calls.jsonl"
	dirName  = ".flora"
	idPrefix = "call-"
)

// Entry is one audit event.
type Entry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`

	// LLM call
	Row      int    `json:"row"`
	Model    string `json:"model,omitempty"`
	Prompt   string `json:"prompt,omitempty"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`
}

// Dir locates the .flora directory by walking up from the working directory.
// Falls back to ./.flora when no ancestor has one.
func Dir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return dirName
	}
	for dir := cwd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, dirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	return filepath.Join(cwd, dirName)
}

// Path returns the audit log path, creating the .flora directory if needed.
func Path() (string, error) {
	d := Dir()
	if err := os.MkdirAll(d, 0750); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", d, err)
	}
	return filepath.Join(d, FileName), nil
}

// Append appends an event as a single JSON line. Workers append concurrently
// and other flora processes may share the file, so the write is guarded by a
// file lock.
func Append(e *Entry) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil entry")
	}
	if e.Kind == "" {
		return "", fmt.Errorf("kind is required")
	}

	p, err := Path()
	if err != nil {
		return "", err
	}

	if e.ID == "" {
		e.ID, err = newID()
		if err != nil {
			return "", err
		}
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	} else {
		e.CreatedAt = e.CreatedAt.UTC()
	}

	lock := flock.New(p + ".lock")
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("failed to lock audit log: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) // nolint:gosec // shared log
	if err != nil {
		return "", fmt.Errorf("failed to open audit log: %w", err)
	}
	defer func() { _ = f.Close() }()

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return "", fmt.Errorf("failed to write audit entry: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush audit log: %w", err)
	}

	return e.ID, nil
}

func newID() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return idPrefix + hex.EncodeToString(b[:]), nil
}
