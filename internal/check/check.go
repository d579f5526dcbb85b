// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for the exiftool collaborator.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/exiftool"
)

// Sentinel errors returned by CheckDeps when the external tool is missing or unusable.
var (
	ErrExiftoolNotFound = errors.New("exiftool not found on PATH")
	ErrExiftoolTooOld   = fmt.Errorf("exiftool version is too old (minimum %.2f)", exiftool.MinVersion)
	ErrExiftoolBroken   = errors.New("exiftool found but -ver failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: reports exiftool presence and
// version against the minimum. Informational only; returns false when any
// check failed so the caller can set the exit code.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	if _, err := exec.LookPath(cfg.ExiftoolBin); err != nil {
		log.Error("exiftool not found (looked for %q)", cfg.ExiftoolBin)
		log.Info("Install from https://exiftool.org/ and ensure it is on PATH")
		return false
	}
	log.Success("exiftool binary: %s", cfg.ExiftoolBin)

	tool := exiftool.New(cfg.ExiftoolBin)
	ver, err := tool.Version(ctx)
	if err != nil {
		log.Error("exiftool -ver failed: %v", err)
		return false
	}
	if ver < exiftool.MinVersion {
		log.Error("exiftool version %.2f is too old (minimum %.2f)", ver, exiftool.MinVersion)
		return false
	}
	log.Success("exiftool version: %.2f (minimum %.2f)", ver, exiftool.MinVersion)
	return true
}

// CheckDeps is the pre-pipeline validation: exiftool must be on PATH and
// meet the minimum version. Returns a sentinel error on failure.
func CheckDeps(ctx context.Context, cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.ExiftoolBin); err != nil {
		return ErrExiftoolNotFound
	}
	ver, err := exiftool.New(cfg.ExiftoolBin).Version(ctx)
	if err != nil {
		return ErrExiftoolBroken
	}
	if ver < exiftool.MinVersion {
		return fmt.Errorf("%w: found %.2f", ErrExiftoolTooOld, ver)
	}
	return nil
}
