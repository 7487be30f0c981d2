// Package cache stores analysis reports keyed by document content hash so
// re-analyzing an unchanged contract is free.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/psarda/clauselens/internal/model"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentHash returns the short content hash identifying a document
// (sha256, first 16 hex chars). The same value keys the audit trail.
func DocumentHash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])[:16]
}

// ReportKey generates a cache key from a document hash
func ReportKey(documentHash string) string {
	return "clauselens:v1:" + documentHash
}

// GetReport retrieves a cached report by document hash
func GetReport(c Cache, documentHash string) (*model.Report, bool) {
	data, found := c.Get(ReportKey(documentHash))
	if !found {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		// Corrupt entry, drop it
		_ = c.Delete(ReportKey(documentHash))
		return nil, false
	}
	return &report, true
}

// SetReport caches a report under its document hash
func SetReport(c Cache, report *model.Report, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.Set(ReportKey(report.DocumentHash), data, ttl)
}
