package service

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmarr/casefolio/internal/config"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
)

// imageExtensions is the extension set the classifier falls back to when
// no keyword matched.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".heic": true,
}

// ClassifyFileName maps a file name to a [models.DocumentType] by keyword,
// first match wins. Order matters: names like "crash_medical_records.pdf"
// carry several keywords and must classify by the earliest rule.
func ClassifyFileName(name string) models.DocumentType {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "retainer"):
		return models.DocumentTypeRetainer
	case strings.Contains(lower, "crash"), strings.Contains(lower, "police"):
		return models.DocumentTypeCrashReport
	case strings.Contains(lower, "medical"), strings.Contains(lower, "record"):
		return models.DocumentTypeMedicalRecord
	case strings.Contains(lower, "auth"), strings.Contains(lower, "hipaa"):
		return models.DocumentTypeAuthorization
	case strings.Contains(lower, "insurance"):
		return models.DocumentTypeInsurance
	}

	if imageExtensions[strings.ToLower(filepath.Ext(lower))] {
		return models.DocumentTypePhoto
	}

	return models.DocumentTypeOther
}

// Stager accumulates a pending upload batch. Multiple browse or drag/drop
// actions append to the same batch until Take or Cancel clears it.
type Stager struct {
	previewsDir string
	logger      *logger.Logger

	mu    sync.Mutex
	batch []*PendingFile
}

// NewStager constructs a [Stager] writing preview files under the
// configured previews directory.
func NewStager(cfg config.Previews, logger *logger.Logger) *Stager {
	return &Stager{previewsDir: cfg.Dir, logger: logger}
}

// Stage classifies each file, allocates a preview for image content, and
// appends the resulting entries to the existing batch. A preview that
// cannot be allocated downgrades the entry to no-preview rather than
// failing the staging action.
func (s *Stager) Stage(files ...RawFile) []*PendingFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range files {
		entry := &PendingFile{
			File: f,
			Type: ClassifyFileName(f.Name),
		}

		if strings.HasPrefix(f.ContentType, "image/") {
			preview, err := newPreview(s.previewsDir, f.Data)
			if err != nil {
				s.logger.Warn().Err(err).Str("file", f.Name).Msg("preview allocation failed, staging without preview")
			} else {
				entry.Preview = preview
			}
		}

		s.batch = append(s.batch, entry)
	}

	return s.snapshotLocked()
}

// Pending returns the current batch in staging order.
func (s *Stager) Pending() []*PendingFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Unstage removes the entry at index and releases its preview. An index
// outside the batch is a no-op, so unstaging the same position twice after
// a removal cannot fail.
func (s *Stager) Unstage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.batch) {
		return
	}

	s.batch[index].releasePreview()
	s.batch = append(s.batch[:index], s.batch[index+1:]...)
}

// SetType overrides the classified type of the entry at index.
func (s *Stager) SetType(index int, t models.DocumentType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.batch) {
		return
	}
	s.batch[index].Type = t
}

// SetPhotoCategory sets the photo sub-category of the entry at index. The
// value is only consumed by the upload pipeline when the entry's type is
// photo.
func (s *Stager) SetPhotoCategory(index int, c models.PhotoCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.batch) {
		return
	}
	s.batch[index].PhotoCategory = c
}

// Take clears the batch and hands it to the caller. The upload pipeline
// takes the batch before processing so the pending set is emptied
// unconditionally, whatever the per-file outcomes.
func (s *Stager) Take() []*PendingFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.batch
	s.batch = nil
	return batch
}

// Cancel drops the whole batch, releasing every preview.
func (s *Stager) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.batch {
		entry.releasePreview()
	}
	s.batch = nil
}

func (s *Stager) snapshotLocked() []*PendingFile {
	out := make([]*PendingFile, len(s.batch))
	copy(out, s.batch)
	return out
}
