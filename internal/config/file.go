package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultFilePath is the conventional config file location, relative to the
// working directory.
const DefaultFilePath = "humpyard.toml"

// FileConfig mirrors the TOML config file. Pointer fields distinguish "key
// absent" from a zero value so unset keys never stomp defaults.
type FileConfig struct {
	InputDir         *string `toml:"input_dir"`
	ProcessedDirName *string `toml:"processed_dir"`
	Exiftool         *string `toml:"exiftool"`
	DryRun           *bool   `toml:"dry_run"`
	Watch            *bool   `toml:"watch"`
	ShowTags         *bool   `toml:"show_tags"`
	Verbose          *bool   `toml:"verbose"`
	Color            *string `toml:"color"`
	LogFile          *string `toml:"log"`
}

// LoadFile reads the TOML config at path. When explicit is false (the
// conventional path, not user-supplied) a missing file is not an error and
// an empty FileConfig is returned.
func LoadFile(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &fc, nil
}

// Apply copies the file's set keys onto cfg. Called between the defaults
// and the flag layer, so flags still win.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.InputDir != nil {
		cfg.InputDir = NormalizeDirArg(*fc.InputDir)
	}
	if fc.ProcessedDirName != nil {
		cfg.ProcessedDirName = *fc.ProcessedDirName
	}
	if fc.Exiftool != nil {
		cfg.ExiftoolBin = *fc.Exiftool
	}
	if fc.DryRun != nil {
		cfg.DryRun = *fc.DryRun
	}
	if fc.Watch != nil {
		cfg.Watch = *fc.Watch
	}
	if fc.ShowTags != nil {
		cfg.ShowTag = *fc.ShowTags
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
}
