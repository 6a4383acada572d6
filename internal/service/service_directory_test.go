package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/internal/validators"
	"github.com/jmarr/casefolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_SearchDegradesOnError(t *testing.T) {
	repo := &fakeDirectoryRepo{err: errors.New("connection refused")}
	svc := NewDirectoryService(repo, validators.NewDirectoryValidator(), logger.Nop())

	got := svc.Search(context.Background(), "cle")
	assert.Empty(t, got, "search failure yields no matches, not an error")
}

func TestDirectoryService_SearchIgnoresShortQueries(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewDirectoryService(repo, validators.NewDirectoryValidator(), logger.Nop())

	assert.Empty(t, svc.Search(context.Background(), "a"))
	assert.Empty(t, svc.Search(context.Background(), " b "))
}

func TestDirectoryService_UpsertPassesThrough(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewDirectoryService(repo, validators.NewDirectoryValidator(), logger.Nop())

	got, err := svc.Upsert(context.Background(), models.DirectoryRecord{Name: "Cleveland Clinic"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	require.Len(t, repo.upserts, 1)
}

func TestDirectoryService_UpsertRejectsBlankName(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewDirectoryService(repo, validators.NewDirectoryValidator(), logger.Nop())

	_, err := svc.Upsert(context.Background(), models.DirectoryRecord{Name: "   "})
	require.ErrorIs(t, err, validators.ErrEmptyName)
	assert.Empty(t, repo.upserts, "invalid record must not reach the repository")
}

func TestDirectoryService_UpdateRejectsEmptyPatch(t *testing.T) {
	repo := &fakeDirectoryRepo{}
	svc := NewDirectoryService(repo, validators.NewDirectoryValidator(), logger.Nop())

	_, err := svc.Update(context.Background(), 1, models.DirectoryRecordPatch{})
	require.ErrorIs(t, err, validators.ErrEmptyPatch)
}
