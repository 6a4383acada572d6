package workers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFileAged(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	old := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, old, old))
	return path
}

func TestPreviewSweeper_RemovesOnlyExpiredPreviews(t *testing.T) {
	dir := t.TempDir()

	expired := writeFileAged(t, dir, "preview-aaa", 2*time.Hour)
	fresh := writeFileAged(t, dir, "preview-bbb", time.Minute)
	unrelated := writeFileAged(t, dir, "notes.txt", 2*time.Hour)

	s := NewPreviewSweeper(
		config.Previews{Dir: dir},
		config.Workers{PreviewSweepInterval: time.Hour, PreviewTTL: time.Hour},
		logger.Nop(),
	).(*previewSweeper)

	s.sweep()

	_, err := os.Stat(expired)
	assert.True(t, os.IsNotExist(err), "expired preview removed")

	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh preview kept")

	_, err = os.Stat(unrelated)
	assert.NoError(t, err, "non-preview file kept")
}

func TestPreviewSweeper_MissingDirIsQuiet(t *testing.T) {
	s := NewPreviewSweeper(
		config.Previews{Dir: filepath.Join(t.TempDir(), "does-not-exist")},
		config.Workers{PreviewSweepInterval: time.Hour, PreviewTTL: time.Hour},
		logger.Nop(),
	).(*previewSweeper)

	s.sweep()
}

func TestPreviewSweeper_RunAndStop(t *testing.T) {
	dir := t.TempDir()
	expired := writeFileAged(t, dir, "preview-ccc", time.Hour)

	s := NewPreviewSweeper(
		config.Previews{Dir: dir},
		config.Workers{PreviewSweepInterval: 5 * time.Millisecond, PreviewTTL: time.Minute},
		logger.Nop(),
	)

	s.Run()
	require.Eventually(t, func() bool {
		_, err := os.Stat(expired)
		return os.IsNotExist(err)
	}, time.Second, time.Millisecond)

	s.Stop()
	s.Stop() // idempotent
}

func TestWorkers_DisabledWithoutInterval(t *testing.T) {
	w := NewWorkers(config.Workers{}, config.Previews{Dir: t.TempDir()}, logger.Nop())
	assert.Empty(t, w.workers)

	w.Run()
	w.Stop()
}
