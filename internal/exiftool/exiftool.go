// Package exiftool builds and executes exiftool commands for writing and
// reading embedded image metadata.
//
// All invocations go through [exec.CommandContext] with stderr captured, the
// same execution strategy the encode pipeline uses for its external tool:
// callers get the tool's diagnostics back in the error instead of on the
// terminal.
package exiftool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
)

// MinVersion is the oldest exiftool release with reliable support for the
// XMP namespaces this tool writes.
const MinVersion = 11.0

// Tool runs a specific exiftool binary. The zero value is not usable; call
// [New].
type Tool struct {
	bin string
}

// New returns a Tool using the given binary name or path. Pass "exiftool"
// to resolve via PATH.
func New(bin string) *Tool {
	return &Tool{bin: bin}
}

// Version runs `exiftool -ver` and parses the reported version number.
func (t *Tool) Version(ctx context.Context) (float64, error) {
	cmd := exec.CommandContext(ctx, t.bin, "-ver")
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("exiftool -ver: %w", err)
	}
	return ParseVersion(string(out))
}

// ParseVersion converts `exiftool -ver` output (e.g. "12.42\n") to a float.
// Exported for testing without the binary.
func ParseVersion(out string) (float64, error) {
	s := strings.TrimSpace(out)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected exiftool version output %q", s)
	}
	return v, nil
}

// WriteTags embeds the given tag values into the file at path, overwriting
// the file in place. File times are preserved (-P) and no _original backup
// is left behind.
func (t *Tool) WriteTags(ctx context.Context, path string, tags map[string]string) error {
	if len(tags) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, t.bin, BuildWriteArgs(path, tags)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("exiftool write %q: %w: %s",
			path, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// BuildWriteArgs assembles the argument list for a tag-writing invocation.
// Tags are emitted in sorted order so the command line is deterministic.
// Exported for testing without the binary.
func BuildWriteArgs(path string, tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := []string{"-P", "-overwrite_original"}
	for _, k := range keys {
		args = append(args, "-"+k+"="+tags[k])
	}
	return append(args, path)
}

// ReadTags runs a single JSON exiftool call against path and returns the
// file's tags as a flat string map. Non-string values (numbers, arrays) are
// rendered through fmt for display purposes; this is a diagnostic surface,
// not a round-trip one.
func (t *Tool) ReadTags(ctx context.Context, path string) (map[string]string, error) {
	cmd := exec.CommandContext(ctx, t.bin, "-j", "-G1", path)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("exiftool read %q: %w", path, err)
	}
	return ParseReadJSON(out)
}

// ParseReadJSON converts raw `exiftool -j` output into a tag map.
// Exported for testing without the binary.
func ParseReadJSON(data []byte) (map[string]string, error) {
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse exiftool JSON: %w", err)
	}
	if len(entries) == 0 {
		return map[string]string{}, nil
	}

	tags := make(map[string]string, len(entries[0]))
	for k, v := range entries[0] {
		switch val := v.(type) {
		case string:
			tags[k] = val
		case float64:
			tags[k] = strconv.FormatFloat(val, 'f', -1, 64)
		default:
			tags[k] = fmt.Sprintf("%v", val)
		}
	}
	return tags, nil
}
