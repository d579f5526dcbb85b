package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/display"
	"github.com/backmassage/humpyard/internal/logging"
	"github.com/backmassage/humpyard/internal/naming"
	"github.com/backmassage/humpyard/internal/plugin"
	"github.com/backmassage/humpyard/internal/validate"
)

// Run is the top-level batch entry point. It discovers files, dispatches
// each one to the first plugin that accepts it, and returns aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, reg *plugin.Registry) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir, cfg.ProcessedDirName)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, reg, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// ProcessOne dispatches a single file through the registry. Used by watch
// mode, where files arrive one at a time instead of via Discover.
func ProcessOne(ctx context.Context, cfg *config.Config, log *logging.Logger, reg *plugin.Registry, path string) {
	stats := RunStats{Total: 1, Current: 1}
	processFile(ctx, cfg, log, reg, path, &stats)
}

// processFile handles one image file: find a plugin → process → update stats.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	reg *plugin.Registry,
	path string,
	stats *RunStats,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Lstat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}

	handler, ok := reg.HandlerFor(path)
	if !ok {
		log.Warn("Skip: %s", skipReason(basename))
		stats.Skipped++
		fmt.Println()
		return
	}

	if err := handler.Process(ctx, path); err != nil {
		log.Error("%s failed: %v", handler.Name(), err)
		stats.Failed++
		fmt.Println()
		return
	}

	stats.TotalBytes += fi.Size()
	stats.Stamped++
	fmt.Println()
}

// skipReason explains why no plugin accepted a discovered file. Discovery
// already filtered on extension, so the interesting cases are name shape
// and semantic violations.
func skipReason(basename string) string {
	rec, ok := naming.Parse(basename)
	if !ok {
		return "filename does not match the naming scheme"
	}
	if violations := validate.Validate(rec); len(violations) > 0 {
		return strings.Join(violations, "; ")
	}
	return "no plugin accepted the file"
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %s", display.FormatCount(stats.Total, "file"))
	log.Info("Input: %s", cfg.InputDir)
	log.Info("Processed dir: %s/", cfg.ProcessedDirName)
	log.Info("Tool: %s", cfg.ExiftoolBin)
	if cfg.DryRun {
		log.Info("Mode: dry run (no tags written, no files moved)")
	}
	if !cfg.ShowTag {
		log.Info("Tag display: off")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d stamped, %d skipped, %d failed", stats.Stamped, stats.Skipped, stats.Failed)
	log.Info("Summary report:")
	log.Info("  Total files processed: %d", stats.Current)

	if cfg.DryRun {
		log.Info("  Total data stamped: n/a (dry run)")
		return
	}

	if stats.Failed > 0 {
		log.Warn("  %s failed", display.FormatCount(stats.Failed, "file"))
	}
	log.Success("  Total data stamped: %s across %s",
		display.FormatBytes(stats.TotalBytes),
		display.FormatCount(stats.Stamped, "file"))
}
