package service

import (
	"fmt"
	"os"
	"sync"

	"github.com/jmarr/casefolio/models"
)

// RawFile is one file as received from the user: the declared name and
// content type plus the bytes themselves.
type RawFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PendingFile is a staged file that has not been persisted yet. It lives
// only for the duration of one staging session: created on selection,
// destroyed on unstage, successful upload, or batch cancellation.
type PendingFile struct {
	File RawFile

	// Preview is the scratch preview resource for image files, nil for
	// everything else. The pending entry owns it exclusively.
	Preview *Preview

	// Type is the classified document type. The user may override it
	// before confirming the batch.
	Type models.DocumentType

	// PhotoCategory is only meaningful when Type is photo; the upload
	// pipeline ignores it otherwise.
	PhotoCategory models.PhotoCategory
}

// releasePreview releases the entry's preview resource if it has one.
// Safe to call on entries without a preview and safe to call repeatedly.
func (p *PendingFile) releasePreview() {
	if p.Preview != nil {
		_ = p.Preview.Release()
	}
}

// Preview is a scratch file holding previewable bytes for one staged
// image. It must be released exactly once over the lifetime of its pending
// entry; Release is idempotent so the owner cannot double-free it.
type Preview struct {
	path string

	mu       sync.Mutex
	released bool
}

// newPreview writes data to a scratch file under dir and returns the
// preview handle owning it.
func newPreview(dir string, data []byte) (*Preview, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating previews dir: %w", err)
	}

	f, err := os.CreateTemp(dir, "preview-*")
	if err != nil {
		return nil, fmt.Errorf("creating preview file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("writing preview file: %w", err)
	}

	return &Preview{path: f.Name()}, nil
}

// Path returns the preview file location, or an empty string once the
// preview has been released.
func (p *Preview) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return ""
	}
	return p.path
}

// Release removes the preview file. The first call performs the removal;
// every later call is a no-op returning nil.
func (p *Preview) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.released {
		return nil
	}
	p.released = true

	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing preview file: %w", err)
	}
	return nil
}

// Released reports whether Release has been called.
func (p *Preview) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}
