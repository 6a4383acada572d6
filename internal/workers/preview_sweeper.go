// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jacob Marr

package workers

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
)

// previewPrefix matches the scratch files the staging layer creates.
const previewPrefix = "preview-"

// previewSweeper removes abandoned preview files from the previews
// directory. Previews are normally released by their pending entry; the
// sweeper only catches files orphaned by a crash or kill.
type previewSweeper struct {
	dir      string
	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPreviewSweeper constructs the sweeper. It is idle until Run.
func NewPreviewSweeper(previews config.Previews, cfg config.Workers, logger *logger.Logger) Worker {
	return &previewSweeper{
		dir:      previews.Dir,
		interval: cfg.PreviewSweepInterval,
		ttl:      cfg.PreviewTTL,
		logger:   logger,
	}
}

// Run implements [Worker]. It stops any previously running sweep loop,
// then launches a goroutine that sweeps every interval until Stop.
func (s *previewSweeper) Run() {
	s.Stop()

	s.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()
}

// Stop implements [Worker]. Safe to call when the sweeper is not running.
func (s *previewSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// sweep removes preview files older than the TTL. Files created by
// anything else in the directory are left alone.
func (s *previewSweeper) sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Err(err).Str("dir", s.dir).Msg("reading previews dir")
		}
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), previewPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Err(err).Str("path", path).Msg("removing abandoned preview")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("swept abandoned previews")
	}
}
