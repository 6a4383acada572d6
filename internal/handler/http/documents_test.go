package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmarr/casefolio/internal/service"
	"github.com/jmarr/casefolio/internal/store"
	"github.com/jmarr/casefolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, files map[string][]byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7"}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.docs.EXPECT().
		ConfirmUpload(gomock.Any(), c, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Case, batch []*service.PendingFile, _ service.CaseUpdater) (service.UploadOutcome, error) {
			require.Len(t, batch, 1)
			assert.Equal(t, "crash_report.pdf", batch[0].File.Name)
			assert.Equal(t, models.DocumentTypeCrashReport, batch[0].Type)

			applied := []models.DocumentAttachment{{FileName: "crash_report.pdf", Type: batch[0].Type}}
			c.Documents = append(c.Documents, applied...)
			return service.UploadOutcome{Case: c, Applied: applied}, nil
		})

	body, contentType := multipartBody(t, map[string][]byte{"crash_report.pdf": []byte("pdf")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/cases/case-7/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.UploadBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Applied, 1)
	assert.Empty(t, resp.Errors)
	assert.Len(t, resp.Case.Documents, 1)
}

func TestUploadDocuments_TypeOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(models.Case{CaseID: "case-7"}, nil)
	m.docs.EXPECT().
		ConfirmUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Case, batch []*service.PendingFile, _ service.CaseUpdater) (service.UploadOutcome, error) {
			require.Len(t, batch, 1)
			assert.Equal(t, models.DocumentTypePhoto, batch[0].Type)
			assert.Equal(t, models.PhotoCategoryInjury, batch[0].PhotoCategory)
			return service.UploadOutcome{Case: c}, nil
		})

	body, contentType := multipartBody(t,
		map[string][]byte{"scan.pdf": []byte("pdf")},
		map[string]string{"type_0": "photo", "photo_category_0": "injury"})
	req := httptest.NewRequest(http.MethodPost, "/api/cases/case-7/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadDocuments_NoFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newTestHandler(t, ctrl)

	body, contentType := multipartBody(t, nil, map[string]string{"unused": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/cases/case-7/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadDocuments_CaseNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	m.cases.EXPECT().Get(gomock.Any(), "nope").Return(models.Case{}, store.ErrCaseNotFound)

	body, contentType := multipartBody(t, map[string][]byte{"a.pdf": []byte("x")}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/cases/nope/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7", Documents: []models.DocumentAttachment{{FileName: "a.pdf"}}}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.docs.EXPECT().
		Delete(gomock.Any(), c, 0, true, gomock.Any()).
		Return(service.DeleteOutcome{Case: models.Case{CaseID: "case-7"}}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cases/case-7/documents/0?confirm=true", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteDocument_Unconfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7"}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.docs.EXPECT().
		Delete(gomock.Any(), c, 0, false, gomock.Any()).
		Return(service.DeleteOutcome{}, service.ErrDeleteNotConfirmed)

	req := httptest.NewRequest(http.MethodDelete, "/api/cases/case-7/documents/0", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not confirmed")
}

func TestDeleteDocument_BadIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _ := newTestHandler(t, ctrl)

	req := httptest.NewRequest(http.MethodDelete, "/api/cases/case-7/documents/abc", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7", Documents: []models.DocumentAttachment{{FileName: "old.pdf"}}}
	patched := models.Case{CaseID: "case-7", Documents: []models.DocumentAttachment{{FileName: "new.pdf", Tags: []string{"urgent"}}}}

	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.docs.EXPECT().Patch(gomock.Any(), c, 0, "new.pdf", "urgent", gomock.Any()).Return(patched, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/cases/case-7/documents/0",
		strings.NewReader(`{"rename":"new.pdf","add_tag":"urgent"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.CaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"urgent"}, resp.Case.Documents[0].Tags)
}

func TestLinkDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7"}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.links.EXPECT().Link(gomock.Any(), c, 1, "prov-1", gomock.Any()).Return(c, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/case-7/documents/1/link",
		strings.NewReader(`{"provider_id":"prov-1"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLinkDocument_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7"}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.links.EXPECT().
		Link(gomock.Any(), c, 0, "prov-404", gomock.Any()).
		Return(models.Case{}, service.ErrProviderNotInCase)

	req := httptest.NewRequest(http.MethodPost, "/api/cases/case-7/documents/0/link",
		strings.NewReader(`{"provider_id":"prov-404"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnlinkDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, m := newTestHandler(t, ctrl)

	c := models.Case{CaseID: "case-7"}
	m.cases.EXPECT().Get(gomock.Any(), "case-7").Return(c, nil)
	m.links.EXPECT().Unlink(gomock.Any(), c, 2, gomock.Any()).Return(c, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/cases/case-7/documents/2/link", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
