package bigfiles

import (
	"path/filepath"
	"sync"
	"time"
)

// FileRecord is a single file that met the size threshold. Immutable once
// constructed.
type FileRecord struct {
	// Path is the file path as discovered, rooted at the scan directory.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// Result holds the outcome of one scan.
type Result struct {
	// Records are the files at or above the threshold, in no particular
	// order until the formatter sorts them.
	Records []FileRecord `json:"records"`
	// ScannedCount is the total number of regular files visited,
	// including those below the threshold.
	ScannedCount int64 `json:"scanned_count"`
	// TotalBytes is the cumulative size of all scanned files.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of files whose metadata could not be read.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the wall-clock duration of the walk and filter phase.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to scan.
	Path string
	// MinSize is the minimum file size in bytes (inclusive).
	MinSize int64
	// Workers is the traversal pool size (0 = fastwalk default).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Integration indicates whether to output integration script.
	Integration bool
}

// collector accumulates scan results from concurrent fastwalk callbacks
// using a mutex.
type collector struct {
	mu           sync.Mutex // Protect concurrent access
	records      []FileRecord
	scannedCount int64
	totalBytes   int64
	errorCount   int64
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{records: make([]FileRecord, 0)}
}

// record notes one regular file. This operation is protected by a mutex
// since fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) record(path string, size int64, matched bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scannedCount++
	c.totalBytes += size

	if matched {
		c.records = append(c.records, FileRecord{Path: path, Size: size})
	}
}

// recordError notes a regular file whose metadata read failed. The file
// still counts as scanned: it was classified before the read.
func (c *collector) recordError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scannedCount++
	c.errorCount++
}

// snapshot returns the current progress counters.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.scannedCount, c.totalBytes
}

// finalize produces the Result from the collected data. Paths are
// converted to slash format for cross-platform consistency.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]FileRecord, len(c.records))
	copy(records, c.records)

	for i := range records {
		records[i].Path = filepath.ToSlash(records[i].Path)
	}

	return &Result{
		Records:      records,
		ScannedCount: c.scannedCount,
		TotalBytes:   c.totalBytes,
		ErrorCount:   c.errorCount,
	}
}
