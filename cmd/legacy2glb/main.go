package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"legacy2glb/internal/batch"
	"legacy2glb/internal/config"
	"legacy2glb/internal/logger"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.yaml file")
	inDir := flag.String("in", "", "Input directory of legacy mesh JSON files")
	outDir := flag.String("out", "", "Output directory for .glb containers")
	pattern := flag.String("pattern", "", "Input filename glob (default: *.json)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Optional rotating log file")

	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:  *inDir,
		OutputDir: *outDir,
		Pattern:   *pattern,
		Workers:   *workers,
		LogLevel:  *logLevel,
		LogFile:   *logFile,
	})

	if cfg.InputDir == "" || cfg.OutputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: input and output directories are required. Use -in/-out or a config file.")
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	files, err := batch.ListInputs(cfg.InputDir, cfg.Pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing inputs: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("No legacy mesh files to convert.")
		os.Exit(0)
	}

	fmt.Printf("Legacy mesh JSON → GLB converter\n")
	fmt.Printf("Files: %d, Workers: %d\n", len(files), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := batch.Run(batch.Config{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Pattern:   cfg.Pattern,
		Workers:   cfg.Workers,
	}, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Err == nil {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Converted: %d/%d\n", success, len(files))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %v\n", filepath.Base(e.Source), e.Err)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
