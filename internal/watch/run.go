package watch

import (
	"context"

	"github.com/backmassage/humpyard/internal/config"
	"github.com/backmassage/humpyard/internal/logging"
	"github.com/backmassage/humpyard/internal/pipeline"
	"github.com/backmassage/humpyard/internal/plugin"
)

// Run watches the input directory and dispatches each settled file through
// the registry until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, reg *plugin.Registry) error {
	w, err := NewWatcher(cfg.InputDir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	log.Info("Watching %s (Ctrl-C to stop)", cfg.InputDir)

	go func() {
		<-ctx.Done()
		w.Stop()
	}()

	for path := range w.Files {
		if ctx.Err() != nil {
			break
		}
		pipeline.ProcessOne(ctx, cfg, log, reg, path)
	}
	return nil
}
