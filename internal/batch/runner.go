// Package batch fans a directory of legacy mesh files out over a
// worker pool. Each file's conversion is fully self-contained, so the
// workers need no coordination beyond the shared work channel.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"legacy2glb/internal/legacy"
	"legacy2glb/internal/logger"
)

// Config holds all settings for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Pattern   string // filename glob, e.g. "*.json"
	Workers   int
}

// Result holds the outcome of converting one file.
type Result struct {
	Source string
	Output string
	Stats  Stats
	Err    error
}

// ListInputs returns the eligible legacy mesh files in dir, sorted.
func ListInputs(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.json"
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("batch: bad pattern %q: %w", pattern, err)
	}
	sort.Strings(files)
	return files, nil
}

// Run converts the given files, creating the output directory if
// absent. Per-file failures are logged with the filename and cause and
// never abort the batch; the returned slice holds one Result per input
// in the given order.
func Run(cfg Config, files []string) ([]Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	total := len(files)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f files/sec", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	fileChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range fileChan {
				results[idx] = convertOne(cfg, files[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range files {
		fileChan <- i
	}
	close(fileChan)

	wg.Wait()
	close(done)

	return results, nil
}

func convertOne(cfg Config, src string) Result {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(cfg.OutputDir, stem+".glb")

	stats, err := ConvertFile(src, out)
	if err != nil {
		if errors.Is(err, legacy.ErrFormat) {
			logger.Log.Warn("skipping malformed mesh",
				zap.String("file", src), zap.Error(err))
		} else {
			logger.Log.Error("conversion failed",
				zap.String("file", src), zap.Error(err))
		}
		return Result{Source: src, Err: err}
	}
	return Result{Source: src, Output: out, Stats: stats}
}
