package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/logging"
	"github.com/backmassage/humpyard/internal/metadata"
	"github.com/backmassage/humpyard/internal/naming"
	"github.com/backmassage/humpyard/internal/term"
	"github.com/backmassage/humpyard/internal/validate"
)

// fileRow holds the per-file analysis data for the report table.
type fileRow struct {
	Name     string
	Status   string // "ok", "unparsed", "invalid"
	Modifier string
	Date     string
	Problems string
}

// Analyze discovers image files and prints a tabular report of parse and
// validation status per file. Read-only: nothing is written or moved.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) {
	files, err := Discover(cfg.InputDir, cfg.ProcessedDirName)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return
	}
	if len(files) == 0 {
		log.Warn("No image files found in %s", cfg.InputDir)
		return
	}

	log.Info("Analyzing %d files in %s …", len(files), cfg.InputDir)
	fmt.Println()

	var rows []fileRow
	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			return
		}
		rows = append(rows, analyzeFile(filepath.Base(path)))
	}

	printAnalysisTable(rows)
	printAnalysisSummary(log, rows)
}

func analyzeFile(basename string) fileRow {
	row := fileRow{Name: basename}

	rec, ok := naming.Parse(basename)
	if !ok {
		row.Status = "unparsed"
		row.Problems = "does not match the naming scheme"
		return row
	}

	row.Modifier = rec.Modifier
	if date, ok := metadata.PartialDate(rec); ok {
		row.Date = date
	} else {
		row.Date = "n/a"
	}

	if violations := validate.Validate(rec); len(violations) > 0 {
		row.Status = "invalid"
		row.Problems = strings.Join(violations, "; ")
		return row
	}

	row.Status = "ok"
	return row
}

func printAnalysisTable(rows []fileRow) {
	nameW := len("File")
	stW := len("Status")
	modW := len("Mod")
	dateW := len("Date")

	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Status) > stW {
			stW = len(r.Status)
		}
		if len(r.Modifier) > modW {
			modW = len(r.Modifier)
		}
		if len(r.Date) > dateW {
			dateW = len(r.Date)
		}
	}

	if nameW > 50 {
		nameW = 50
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %s",
		nameW, "File",
		stW, "Status",
		modW, "Mod",
		dateW, "Date",
		"Problems",
	)
	separator := "  " + strings.Repeat("─", len(header)-2)

	fmt.Println(header)
	fmt.Println(separator)

	for _, r := range rows {
		name := r.Name
		if len(name) > nameW {
			name = name[:nameW-1] + "…"
		}

		// Pad the plain text first, then wrap in ANSI color. This avoids
		// the alignment bug where %-*s counts escape bytes as visible width.
		stCell := colorPad(r.Status, stW)

		fmt.Printf("  %-*s  %s  %-*s  %-*s  %s\n",
			nameW, name,
			stCell,
			modW, r.Modifier,
			dateW, r.Date,
			r.Problems,
		)
	}
	fmt.Println()
}

func printAnalysisSummary(log *logging.Logger, rows []fileRow) {
	var okCount, unparsed, invalid int
	for _, r := range rows {
		switch r.Status {
		case "ok":
			okCount++
		case "unparsed":
			unparsed++
		case "invalid":
			invalid++
		}
	}

	log.Info("Analyzed %d files", len(rows))
	if unparsed > 0 {
		log.Warn("  %d with names outside the scheme", unparsed)
	}
	if invalid > 0 {
		log.Error("  %d with semantic violations", invalid)
	}
	if unparsed == 0 && invalid == 0 {
		log.Success("  All filenames valid (%d)", okCount)
	} else {
		log.Info("  %d ready for stamping", okCount)
	}
}

// colorPad pads a plain string to width, then wraps in ANSI color. This
// ensures %-*s-style alignment works correctly regardless of escape sequences.
func colorPad(status string, width int) string {
	padded := fmt.Sprintf("%-*s", width, status)
	switch status {
	case "unparsed":
		return term.Orange + padded + term.NC
	case "invalid":
		return term.Red + padded + term.NC
	default:
		return term.Green + padded + term.NC
	}
}
