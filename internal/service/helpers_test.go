package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmarr/casefolio/internal/blob"
	"github.com/jmarr/casefolio/models"
)

// Hand-written doubles: the generated mocks live in internal/mock, which
// imports this package, so using them here would be an import cycle.

// fakeGateway records puts and deletes and fails for file contents listed
// in failPuts.
type fakeGateway struct {
	puts       []string
	deletes    []string
	failPuts   map[string]error
	failDelete error
}

func (g *fakeGateway) Put(_ context.Context, key string, data []byte, _ string) (blob.PutResult, error) {
	if err, ok := g.failPuts[string(data)]; ok {
		return blob.PutResult{}, err
	}
	g.puts = append(g.puts, key)
	return blob.PutResult{Key: key, URL: "https://blobs.test/" + key}, nil
}

func (g *fakeGateway) Delete(_ context.Context, key string) error {
	if g.failDelete != nil {
		return g.failDelete
	}
	g.deletes = append(g.deletes, key)
	return nil
}

func (g *fakeGateway) PublicURL(key string) string {
	return "https://blobs.test/" + key
}

// fakeDirectoryRepo implements store.DirectoryRepository far enough for
// the provider service: upserts assign sequential ids.
type fakeDirectoryRepo struct {
	upserts []models.DirectoryRecord
	nextID  int64
	err     error
}

func (r *fakeDirectoryRepo) UpsertByName(_ context.Context, record models.DirectoryRecord) (models.DirectoryRecord, error) {
	if r.err != nil {
		return models.DirectoryRecord{}, r.err
	}
	r.nextID++
	record.ID = r.nextID
	r.upserts = append(r.upserts, record)
	return record, nil
}

func (r *fakeDirectoryRepo) Search(_ context.Context, _ string, _ int) ([]models.DirectoryRecord, error) {
	return nil, r.err
}

func (r *fakeDirectoryRepo) List(_ context.Context) ([]models.DirectoryRecord, error) {
	return nil, r.err
}

func (r *fakeDirectoryRepo) Get(_ context.Context, _ int64) (models.DirectoryRecord, error) {
	return models.DirectoryRecord{}, r.err
}

func (r *fakeDirectoryRepo) Update(_ context.Context, _ int64, _ models.DirectoryRecordPatch) (models.DirectoryRecord, error) {
	return models.DirectoryRecord{}, r.err
}

func (r *fakeDirectoryRepo) Delete(_ context.Context, _ int64) (bool, error) {
	return false, r.err
}

// seqIDs hands out "id-1", "id-2", ... so activity entries are assertable.
type seqIDs struct {
	n int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// captureUpdater records every case state handed to it and optionally
// fails.
type captureUpdater struct {
	saved []models.Case
	err   error
}

func (u *captureUpdater) update(_ context.Context, c models.Case) error {
	if u.err != nil {
		return u.err
	}
	u.saved = append(u.saved, c)
	return nil
}

var testNow = time.Date(2026, time.January, 1, 12, 0, 0, 123000000, time.UTC)

func fixedNow() time.Time { return testNow }
