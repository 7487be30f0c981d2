package cache

import (
	"testing"
	"time"

	"github.com/psarda/clauselens/internal/model"
)

func TestDocumentHash_StableAndShort(t *testing.T) {
	a := DocumentHash("some contract text")
	b := DocumentHash("some contract text")
	c := DocumentHash("different contract text")

	if a != b {
		t.Errorf("Hash not stable: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("Different texts produced the same hash")
	}
	if len(a) != 16 {
		t.Errorf("Expected 16-char hash, got %d chars", len(a))
	}
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Errorf("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with value v, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("Expected miss after delete")
	}
}

func TestDiskCache_PersistsAndExpires(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("doc1", []byte("payload"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh cache over the same dir must see the entry
	c2 := NewDiskCache(dir, time.Hour)
	val, found := c2.Get("doc1")
	if !found || string(val) != "payload" {
		t.Errorf("Expected persisted value, got %q found=%v", val, found)
	}

	// An already-expired entry is removed on read
	if err := c.Set("doc2", []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, found := c.Get("doc2"); found {
		t.Errorf("Expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Seed only the disk layer
	disk := NewDiskCache(dir, time.Hour)
	if err := disk.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	layered := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := layered.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("Expected disk hit through layered cache, got found=%v", found)
	}

	// After promotion, removing the disk file must not lose the entry
	if err := disk.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := layered.Get("k"); !found {
		t.Errorf("Expected memory hit after promotion")
	}
}

func TestReportRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	report := &model.Report{
		DocumentHash:   DocumentHash("text"),
		Source:         "contract.txt",
		ContractType:   "Service Agreement",
		CompositeScore: 0.42,
		CompositeLevel: model.RiskMedium,
	}

	if err := SetReport(c, report, 0); err != nil {
		t.Fatalf("SetReport failed: %v", err)
	}

	got, found := GetReport(c, report.DocumentHash)
	if !found {
		t.Fatalf("Expected cached report")
	}
	if got.ContractType != "Service Agreement" || got.CompositeScore != 0.42 {
		t.Errorf("Round trip lost data: %+v", got)
	}
}

func TestGetReport_CorruptEntryDropped(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	hash := DocumentHash("text")

	if err := c.Set(ReportKey(hash), []byte("not json"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := GetReport(c, hash); found {
		t.Errorf("Expected corrupt entry to miss")
	}
	if _, found := c.Get(ReportKey(hash)); found {
		t.Errorf("Expected corrupt entry to be deleted")
	}
}
