package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/humpyard/internal/plugin"
)

// Discover walks inputDir, collects regular files with image extensions,
// prunes directories named processedDirName (case-insensitive), skips
// symlinks, and returns the paths sorted lexicographically for deterministic
// processing order.
func Discover(inputDir, processedDirName string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != inputDir && strings.EqualFold(d.Name(), processedDirName) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if plugin.ImageExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
