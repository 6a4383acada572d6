package workers

import (
	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every configured background worker. A zero sweep
// interval disables the preview sweeper.
func NewWorkers(cfg config.Workers, previews config.Previews, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.PreviewSweepInterval > 0 {
		w.workers = append(w.workers, NewPreviewSweeper(previews, cfg, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
