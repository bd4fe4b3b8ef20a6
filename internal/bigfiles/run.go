package bigfiles

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.snapshot())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks the tree at opt.Path and collects every regular file whose
// size is at least opt.MinSize. Directories, symlinks and special files
// are excluded; per-entry errors (permission denied, entries vanishing
// mid-scan) are skipped silently and never abort the scan. A root that
// does not exist or is not a directory yields an empty result rather
// than an error.
//
// The walk operation can be cancelled via ctx. Progress updates are sent
// to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	coll := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, coll, progressHook, opt.ProgressInterval)

	start := time.Now()

	// A root that does not exist or is not a directory yields an empty
	// result. fastwalk stats the root before invoking the callback and
	// would surface that failure as an error.
	if info, err := os.Stat(opt.Path); err != nil || !info.IsDir() {
		log.printf("[debug]: root %s is not a scannable directory: %v\n", opt.Path, err)

		result := coll.finalize()
		result.Elapsed = time.Since(start)

		return result, nil
	}

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			return nil
		}

		if !d.Type().IsRegular() {
			log.printf("[debug]: skipping non-regular entry: %s\n", path)

			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.printf("[debug]: error reading metadata for %s: %v\n", path, err)
			coll.recordError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		size := info.Size()
		coll.record(path, size, size >= opt.MinSize)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := coll.finalize()
	result.Elapsed = time.Since(start)

	return result, nil
}
