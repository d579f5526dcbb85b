// Package plugin defines the file-processor plugin contract and hosts the
// naming_exif plugin, which stamps structured-filename metadata into image
// files and relocates them.
package plugin

import (
	"context"

	"github.com/backmassage/humpyard/internal/config"
)

// Plugin is the host contract for a file processor. CanHandle must be a
// pure admission check (no side effects); Process performs the work and may
// assume nothing — it re-checks what it needs.
type Plugin interface {
	// Name returns the unique plugin name.
	Name() string
	// Version returns the plugin version string.
	Version() string
	// CanHandle reports whether the plugin wants to process the file.
	CanHandle(path string) bool
	// Initialize prepares the plugin with the runtime configuration.
	Initialize(ctx context.Context, cfg *config.Config) error
	// Process handles one file end to end.
	Process(ctx context.Context, path string) error
}

// Registry holds registered plugins in registration order.
type Registry struct {
	plugins []Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends p. Registration order is lookup order.
func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
}

// All returns the registered plugins in order.
func (r *Registry) All() []Plugin {
	return r.plugins
}

// HandlerFor returns the first registered plugin whose CanHandle accepts
// path, or nil and false when no plugin wants the file.
func (r *Registry) HandlerFor(path string) (Plugin, bool) {
	for _, p := range r.plugins {
		if p.CanHandle(path) {
			return p, true
		}
	}
	return nil, false
}
