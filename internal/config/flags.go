package config

// This file implements CLI flag parsing and help text.
// Flag values are captured into an overrides struct and applied to cfg after
// the config file layer, so that file values hold unless a flag was passed.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args, loads the config file, and applies both layers
// onto cfg. On --help or --version it prints and exits. On error it returns
// non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("humpyard", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var ov overrides
	defineBehaviorFlags(fs, &ov)
	defineDisplayFlags(fs, &ov)
	defineUtilityFlags(fs, &ov)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if ov.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "humpyard v"+version)
		os.Exit(0)
	}

	// Track which flags were actually passed; only those override the file.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := DefaultFilePath
	explicit := false
	if ov.configFile != "" {
		path = ov.configFile
		explicit = true
	}
	fileCfg, err := LoadFile(path, explicit)
	if err != nil {
		return err
	}
	fileCfg.Apply(cfg)

	applyOverrides(cfg, &ov, set)

	return parsePositionalArgs(fs, cfg)
}

// overrides holds raw flag values until we know which were set.
type overrides struct {
	dryRun       bool
	watch        bool
	noTags       bool
	verbose      bool
	check        bool
	analyze      bool
	forceColor   bool
	noColor      bool
	logFile      string
	processedDir string
	exiftoolBin  string
	configFile   string
	showVersion  bool
	showHelp     bool
}

// defineBehaviorFlags registers dry-run, watch, processed-dir, exiftool, no-tags.
func defineBehaviorFlags(fs *flag.FlagSet, ov *overrides) {
	fs.BoolVar(&ov.dryRun, "dry-run", false, "Preview only; do not write metadata or move files")
	fs.BoolVar(&ov.dryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&ov.watch, "watch", false, "Keep running and process files as they appear")
	fs.BoolVar(&ov.watch, "w", false, "Same as --watch")
	fs.BoolVar(&ov.noTags, "no-tags", false, "Do not log each written tag")
	fs.StringVar(&ov.processedDir, "processed-dir", "", "Name of the processed subdirectory (default: processed)")
	fs.StringVar(&ov.exiftoolBin, "exiftool", "", "exiftool binary name or path (default: exiftool)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --analyze, --log.
func defineDisplayFlags(fs *flag.FlagSet, ov *overrides) {
	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&ov.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&ov.verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&ov.check, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&ov.check, "c", false, "Same as --check")
	fs.BoolVar(&ov.analyze, "analyze", false, "Report filename status without processing")
	fs.BoolVar(&ov.analyze, "a", false, "Same as --analyze")
	fs.StringVar(&ov.logFile, "log", "", "Append logs to file")
	fs.StringVar(&ov.logFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, ov *overrides) {
	fs.StringVar(&ov.configFile, "config", "", "Config file path (default: ./humpyard.toml if present)")
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")
}

// applyOverrides copies passed flag values into cfg.
func applyOverrides(cfg *Config, ov *overrides, set map[string]bool) {
	if set["dry-run"] || set["d"] {
		cfg.DryRun = ov.dryRun
	}
	if set["watch"] || set["w"] {
		cfg.Watch = ov.watch
	}
	if set["no-tags"] {
		cfg.ShowTag = !ov.noTags
	}
	if set["verbose"] || set["v"] {
		cfg.Verbose = ov.verbose
	}
	if set["check"] || set["c"] {
		cfg.CheckOnly = ov.check
	}
	if set["analyze"] || set["a"] {
		cfg.AnalyzeOnly = ov.analyze
	}
	if set["log"] || set["l"] {
		cfg.LogFile = ov.logFile
	}
	if set["processed-dir"] {
		cfg.ProcessedDirName = ov.processedDir
	}
	if set["exiftool"] {
		cfg.ExiftoolBin = ov.exiftoolBin
	}
	if set["config"] {
		cfg.ConfigFile = ov.configFile
	}
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir from the positional arg when not in
// check mode. The config file may already have supplied it.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 0 {
		return nil
	}
	switch len(args) {
	case 0:
		if cfg.InputDir != "" {
			return nil
		}
		return fmt.Errorf("need an input_dir")
	case 1:
		cfg.InputDir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("need exactly one input_dir")
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "HumpYard v" + version + " — structured filename → EXIF/XMP stamper"},
		{"", ""},
		{"  humpyard [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not write metadata or move files"},
		{"  -w, --watch", "Keep running and process files as they appear"},
		{"  --processed-dir <name>", "Processed subdirectory name (default: processed)"},
		{"  --exiftool <bin>", "exiftool binary name or path"},
		{"", ""},
		{"Display", ""},
		{"  --no-tags", "Do not log each written tag"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "Config file (default: ./humpyard.toml if present)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -a, --analyze", "Report filename status without processing"},
		{"  -c, --check", "System diagnostics (exiftool presence, version)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
