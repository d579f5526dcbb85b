// Command humpyard is the CLI entrypoint for the HumpYard photo stamper.
//
// It parses flags and the optional TOML config, validates configuration and
// paths, and either runs system diagnostics (--check), the read-only
// analysis report (--analyze), or the stamping pipeline (batch or --watch).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/humpyard/internal/check"
	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/display"
	"github.com/backmassage/humpyard/internal/exiftool"
	"github.com/backmassage/humpyard/internal/logging"
	"github.com/backmassage/humpyard/internal/pipeline"
	"github.com/backmassage/humpyard/internal/plugin"
	"github.com/backmassage/humpyard/internal/watch"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "humpyard: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "humpyard: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "humpyard: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between files without leaving half-stamped output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	if cfg.CheckOnly {
		if !check.RunCheck(ctx, &cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve the input path; relative paths and symlinked mount points
	// are normalized so discovery and the processed-dir pruning agree.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	cfg.InputDir = inputAbs

	log.Info("=== HumpYard v%s (%s) ===", version, commit)
	log.Info("In: %s", cfg.InputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no tags will be written, no files moved")
	}
	log.Info("")

	if cfg.AnalyzeOnly {
		pipeline.Analyze(ctx, &cfg, log)
		return 0
	}

	// Fail fast if exiftool is missing or too old.
	if err := check.CheckDeps(ctx, &cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 4: Register plugins and run.
	reg := plugin.NewRegistry()
	stamper := plugin.NewNamingExif(log, exiftool.New(cfg.ExiftoolBin))
	if err := stamper.Initialize(ctx, &cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	reg.Register(stamper)

	stats := pipeline.Run(ctx, &cfg, log, reg)

	if cfg.Watch && ctx.Err() == nil {
		if err := watch.Run(ctx, &cfg, log, reg); err != nil {
			log.Error("Watch failed: %v", err)
			return 1
		}
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path so discovery sees the
// same hierarchy the plugins do.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
