package service

import (
	"context"
	"testing"

	"github.com/jmarr/casefolio/internal/logger"
	"github.com/jmarr/casefolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLinker() *facilityLinker {
	l := NewFacilityLinker(&seqIDs{}, logger.Nop()).(*facilityLinker)
	l.now = fixedNow
	return l
}

func linkedCase() models.Case {
	return models.Case{
		CaseID: "c1",
		Documents: []models.DocumentAttachment{
			{FileName: "bill1.pdf", LinkedFacilityID: "prov-1"},
			{FileName: "bill2.pdf", LinkedFacilityID: "prov-2"},
			{FileName: "unrelated.pdf"},
		},
		Providers: []models.MedicalProvider{
			{ID: "prov-1", Name: "City Hospital"},
			{ID: "prov-2", Name: "Valley PT"},
		},
	}
}

func TestLink(t *testing.T) {
	linker := newTestLinker()
	updater := &captureUpdater{}

	got, err := linker.Link(context.Background(), linkedCase(), 2, "prov-1", updater.update)
	require.NoError(t, err)
	assert.Equal(t, "prov-1", got.Documents[2].LinkedFacilityID)
	assert.Len(t, updater.saved, 1)
}

func TestLink_OverwritesExisting(t *testing.T) {
	linker := newTestLinker()

	got, err := linker.Link(context.Background(), linkedCase(), 0, "prov-2", (&captureUpdater{}).update)
	require.NoError(t, err)
	assert.Equal(t, "prov-2", got.Documents[0].LinkedFacilityID)
}

func TestLink_UnknownProvider(t *testing.T) {
	linker := newTestLinker()

	_, err := linker.Link(context.Background(), linkedCase(), 0, "prov-404", (&captureUpdater{}).update)
	assert.ErrorIs(t, err, ErrProviderNotInCase)
}

func TestLink_IndexOutOfRange(t *testing.T) {
	linker := newTestLinker()

	_, err := linker.Link(context.Background(), linkedCase(), 9, "prov-1", (&captureUpdater{}).update)
	assert.ErrorIs(t, err, ErrDocumentIndexOutOfRange)
}

func TestUnlink(t *testing.T) {
	linker := newTestLinker()

	got, err := linker.Unlink(context.Background(), linkedCase(), 0, (&captureUpdater{}).update)
	require.NoError(t, err)
	assert.Empty(t, got.Documents[0].LinkedFacilityID)

	// Unlinking an unlinked document stays a no-op.
	got, err = linker.Unlink(context.Background(), got, 0, (&captureUpdater{}).update)
	require.NoError(t, err)
	assert.Empty(t, got.Documents[0].LinkedFacilityID)
}

func TestRemoveProvider_ClearsOnlyItsLinks(t *testing.T) {
	linker := newTestLinker()
	updater := &captureUpdater{}

	got, err := linker.RemoveProvider(context.Background(), linkedCase(), "prov-1", updater.update)
	require.NoError(t, err)

	require.Len(t, got.Providers, 1)
	assert.Equal(t, "prov-2", got.Providers[0].ID)

	assert.Empty(t, got.Documents[0].LinkedFacilityID, "link to removed provider cleared")
	assert.Equal(t, "prov-2", got.Documents[1].LinkedFacilityID, "other links untouched")

	require.Len(t, got.Activity, 1)
	assert.Equal(t, models.ActivityProviderDelete, got.Activity[0].Kind)
	assert.Contains(t, got.Activity[0].Message, "City Hospital")
	assert.Len(t, updater.saved, 1)
}

func TestRemoveProvider_Unknown(t *testing.T) {
	linker := newTestLinker()

	_, err := linker.RemoveProvider(context.Background(), linkedCase(), "prov-404", (&captureUpdater{}).update)
	assert.ErrorIs(t, err, ErrProviderNotInCase)
}

func TestLinkedDocuments(t *testing.T) {
	linker := newTestLinker()
	c := linkedCase()
	c.Documents = append(c.Documents, models.DocumentAttachment{FileName: "bill3.pdf", LinkedFacilityID: "prov-1"})

	docs := linker.LinkedDocuments(c, "prov-1")
	require.Len(t, docs, 2)
	assert.Equal(t, "bill1.pdf", docs[0].FileName)
	assert.Equal(t, "bill3.pdf", docs[1].FileName)

	assert.Empty(t, linker.LinkedDocuments(c, "prov-404"))
}
