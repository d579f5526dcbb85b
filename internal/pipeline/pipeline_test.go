package pipeline

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "b.jpg"))
	writeFile(t, filepath.Join(dir, "a.tiff"))
	writeFile(t, filepath.Join(dir, "sub", "c.JPEG"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "clip.mp4"))
	writeFile(t, filepath.Join(dir, "processed", "done.jpg"))
	writeFile(t, filepath.Join(dir, "sub", "Processed", "also-done.tif"))

	got, err := Discover(dir, "processed")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.tiff"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "sub", "c.JPEG"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_SkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, filepath.Join(dir, "real.jpg"))
	if err := os.Symlink(target, filepath.Join(dir, "link.jpg")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	got, err := Discover(dir, "processed")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(got) != 1 || got[0] != target {
		t.Errorf("Discover = %v, want only %q", got, target)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), "processed"); err == nil {
		t.Error("Discover of a missing directory succeeded")
	}
}

func TestAnalyzeFile(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantStatus string
		wantDate   string
	}{
		{
			name:       "fully valid",
			file:       "2023.05.17.09.30.45.E.group.sub.001.jpg",
			wantStatus: "ok",
			wantDate:   "2023-05-17",
		},
		{
			name:       "year only precision",
			file:       "2023.00.00.00.00.00.B.group.sub.001.jpg",
			wantStatus: "ok",
			wantDate:   "2023",
		},
		{
			name:       "no date at all",
			file:       "0000.00.00.00.00.00.C.group.sub.001.jpg",
			wantStatus: "ok",
			wantDate:   "n/a",
		},
		{
			name:       "outside the scheme",
			file:       "holiday.jpg",
			wantStatus: "unparsed",
			wantDate:   "",
		},
		{
			name:       "semantic violation",
			file:       "2023.02.30.00.00.00.A.group.sub.001.jpg",
			wantStatus: "invalid",
			wantDate:   "2023-02-30",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := analyzeFile(tt.file)
			if row.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", row.Status, tt.wantStatus)
			}
			if row.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", row.Date, tt.wantDate)
			}
			if tt.wantStatus != "ok" && row.Problems == "" {
				t.Error("Problems empty for a non-ok row")
			}
		})
	}
}

func TestSkipReason(t *testing.T) {
	if got := skipReason("holiday.jpg"); !strings.Contains(got, "naming scheme") {
		t.Errorf("skipReason for unparseable = %q", got)
	}
	if got := skipReason("2023.05.17.09.30.45.Q.g.s.001.jpg"); !strings.Contains(got, "modifier") {
		t.Errorf("skipReason for bad modifier = %q", got)
	}
}
