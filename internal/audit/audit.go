// Package audit keeps an append-only JSON trail of analyses per document,
// keyed by content hash, so reviews of the same contract are traceable.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/psarda/clauselens/internal/model"
)

// Entry is one audit trail record
type Entry struct {
	ID           string        `json:"id"`
	Timestamp    time.Time     `json:"timestamp"`
	DocumentHash string        `json:"document_hash"`
	Report       *model.Report `json:"report"`
}

// Logger writes and reads the per-document audit trail
type Logger struct {
	dir string
}

// NewLogger creates an audit logger rooted at dir
func NewLogger(dir string) *Logger {
	return &Logger{dir: dir}
}

// Log appends the report to the document's audit trail and returns the
// trail file path
func (l *Logger) Log(report *model.Report) (string, error) {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return "", fmt.Errorf("create audit dir: %w", err)
	}

	entries, err := l.Trail(report.DocumentHash)
	if err != nil {
		// A corrupt trail should not block new analyses; start fresh
		entries = nil
	}

	entries = append(entries, Entry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		DocumentHash: report.DocumentHash,
		Report:       report,
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal audit trail: %w", err)
	}

	path := l.path(report.DocumentHash)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write audit trail: %w", err)
	}
	return path, nil
}

// Trail returns all recorded entries for a document, oldest first.
// A missing trail is an empty one, not an error.
func (l *Logger) Trail(documentHash string) ([]Entry, error) {
	data, err := os.ReadFile(l.path(documentHash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audit trail: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse audit trail: %w", err)
	}
	return entries, nil
}

func (l *Logger) path(documentHash string) string {
	return filepath.Join(l.dir, documentHash+".json")
}
