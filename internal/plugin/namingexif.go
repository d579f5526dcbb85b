package plugin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/metadata"
	"github.com/backmassage/humpyard/internal/naming"
	"github.com/backmassage/humpyard/internal/validate"
)

// PluginName and PluginVersion identify the naming_exif plugin.
const (
	PluginName    = "naming_exif"
	PluginVersion = "1.0.0"
)

// ImageExtensions is the set of file extensions (lowercase, with dot) the
// naming_exif plugin accepts.
var ImageExtensions = map[string]bool{
	".tiff": true,
	".tif":  true,
	".jpg":  true,
	".jpeg": true,
}

// TagWriter writes metadata tags into a file. Defined here so the plugin can
// be tested with a mock instead of a real exiftool binary.
type TagWriter interface {
	WriteTags(ctx context.Context, path string, tags map[string]string) error
}

// TagReader is optionally implemented by a TagWriter that can read tags
// back out of a file. When available and verbose mode is on, the plugin
// reads the stamped file to confirm the identifier landed.
type TagReader interface {
	ReadTags(ctx context.Context, path string) (map[string]string, error)
}

// Logger is the minimal logging interface the plugin needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// NamingExif stamps date and identifier tags derived from the structured
// filename, then relocates the file into the processed directory.
type NamingExif struct {
	cfg    *config.Config
	log    Logger
	writer TagWriter
}

// NewNamingExif creates the plugin with its collaborators.
func NewNamingExif(log Logger, writer TagWriter) *NamingExif {
	return &NamingExif{log: log, writer: writer}
}

// Name returns the plugin name.
func (p *NamingExif) Name() string { return PluginName }

// Version returns the plugin version.
func (p *NamingExif) Version() string { return PluginVersion }

// Initialize stores the runtime configuration. Tool availability is checked
// up front by the host, not here.
func (p *NamingExif) Initialize(ctx context.Context, cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("plugin %s: nil config", PluginName)
	}
	p.cfg = cfg
	p.log.Debug(cfg.Verbose, "plugin %s %s initialized", PluginName, PluginVersion)
	return nil
}

// CanHandle accepts regular image files whose name parses cleanly and passes
// semantic validation. Symlinks and anything already inside a processed
// directory are refused.
func (p *NamingExif) CanHandle(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil || fi.Mode()&os.ModeSymlink != 0 || fi.IsDir() {
		return false
	}
	if filepath.Base(filepath.Dir(path)) == p.processedDirName() {
		return false
	}
	if !ImageExtensions[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	rec, ok := naming.Parse(filepath.Base(path))
	if !ok {
		return false
	}
	return len(validate.Validate(rec)) == 0
}

// Process parses and validates the filename, writes the derived tags, and
// moves the file into the processed directory. Dry-run reports the tags
// without touching the file.
func (p *NamingExif) Process(ctx context.Context, path string) error {
	base := filepath.Base(path)

	rec, ok := naming.Parse(base)
	if !ok {
		return fmt.Errorf("filename %q does not match the naming scheme", base)
	}
	if violations := validate.Validate(rec); len(violations) > 0 {
		return fmt.Errorf("filename %q is invalid: %s", base, strings.Join(violations, "; "))
	}

	tags := metadata.Tags(rec)

	if p.cfg.DryRun {
		p.log.Info("[DRY] %s: would write %d tags and move to %s/", base, len(tags), p.processedDirName())
		p.showTags(tags)
		return nil
	}

	if err := p.writer.WriteTags(ctx, path, tags); err != nil {
		return err
	}
	p.showTags(tags)

	if p.cfg.Verbose {
		p.verifyStamp(ctx, path)
	}

	dest, err := MoveToProcessed(path, p.processedDirName())
	if err != nil {
		return err
	}
	p.log.Success("%s -> %s", base, dest)
	return nil
}

// verifyStamp reads the file back and confirms an identifier tag is
// present. The read keys carry exiftool's own group prefixes, so the match
// is on the tag name rather than the full key.
func (p *NamingExif) verifyStamp(ctx context.Context, path string) {
	reader, ok := p.writer.(TagReader)
	if !ok {
		return
	}
	tags, err := reader.ReadTags(ctx, path)
	if err != nil {
		p.log.Warn("verify: cannot read tags back from %s: %v", filepath.Base(path), err)
		return
	}
	for k, v := range tags {
		if strings.HasSuffix(k, "Identifier") && v != "" {
			p.log.Debug(true, "verified identifier %s", v)
			return
		}
	}
	p.log.Warn("verify: no identifier tag found in %s after stamping", filepath.Base(path))
}

func (p *NamingExif) processedDirName() string {
	if p.cfg == nil || p.cfg.ProcessedDirName == "" {
		return config.DefaultConfig().ProcessedDirName
	}
	return p.cfg.ProcessedDirName
}

func (p *NamingExif) showTags(tags map[string]string) {
	if !p.cfg.ShowTag {
		return
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.log.Info("    %s = %s", k, tags[k])
	}
}
