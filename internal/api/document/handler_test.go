package document

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/entity"
	documentuc "github.com/nqkhanh/commune-backend/internal/usecase/document"
)

type fakeDocumentUsecase struct {
	docs      []*entity.Document
	created   *entity.Document
	createErr error
	deleteIDs []string
	export    *documentuc.ExportResult
	exportErr error
}

func (f *fakeDocumentUsecase) Create(ctx context.Context, req *entity.CreateDocumentRequest) (*entity.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeDocumentUsecase) CreateFromWord(ctx context.Context, req *entity.UploadDocumentRequest) (*entity.Document, error) {
	return nil, entity.ErrInvalidFile
}

func (f *fakeDocumentUsecase) List(ctx context.Context) ([]*entity.Document, error) {
	return f.docs, nil
}

func (f *fakeDocumentUsecase) Delete(ctx context.Context, id string) error {
	f.deleteIDs = append(f.deleteIDs, id)
	return nil
}

func (f *fakeDocumentUsecase) Export(ctx context.Context, id string, format entity.ExportFormat) (*documentuc.ExportResult, error) {
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return f.export, nil
}

func newTestRouter(uc DocumentUsecase) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewHandler(uc, config.UploadConfig{MaxUploadSize: 1 << 20}))
	})
	return r
}

func TestList_EmptyIsArray(t *testing.T) {
	router := newTestRouter(&fakeDocumentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreate_Success(t *testing.T) {
	uc := &fakeDocumentUsecase{created: &entity.Document{
		ID:       "d1",
		Title:    "Thông báo",
		Content:  "Nội dung",
		FileType: entity.FileTypeText,
		Date:     "15/03/2026",
	}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/data",
		strings.NewReader(`{"title":"Thông báo","content":"Nội dung"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var doc entity.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "d1", doc.ID)
	assert.Equal(t, entity.FileTypeText, doc.FileType)
}

func TestCreate_ErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		contains string
	}{
		{fmt.Errorf("%w: title", entity.ErrMissingField), http.StatusBadRequest, msgMissingFields},
		{fmt.Errorf("%w: file type", entity.ErrInvalidParameter), http.StatusBadRequest, msgInvalidRequest},
		{fmt.Errorf("%w: .pdf", entity.ErrInvalidExtension), http.StatusBadRequest, msgInvalidFile},
		{fmt.Errorf("create document: %w", context.DeadlineExceeded), http.StatusInternalServerError, msgInternalError},
	}

	for _, tc := range cases {
		router := newTestRouter(&fakeDocumentUsecase{createErr: tc.err})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/data",
			strings.NewReader(`{"title":"x","content":"y"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
		assert.Contains(t, rec.Body.String(), tc.contains, "error %v", tc.err)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	router := newTestRouter(&fakeDocumentUsecase{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(`{broken`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelete_AlwaysSucceeds(t *testing.T) {
	uc := &fakeDocumentUsecase{}
	router := newTestRouter(uc)

	for _, id := range []string{"b8f3a6f0-0000-0000-0000-000000000000", "not-a-uuid"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/data/"+id, nil)
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "id %q", id)
		assert.Contains(t, rec.Body.String(), msgDocumentDeleted)
	}
	assert.Equal(t, []string{"b8f3a6f0-0000-0000-0000-000000000000", "not-a-uuid"}, uc.deleteIDs)
}

func TestExport_SetsDownloadHeaders(t *testing.T) {
	uc := &fakeDocumentUsecase{export: &documentuc.ExportResult{
		Data:        []byte("# Lịch họp"),
		ContentType: "text/markdown; charset=utf-8",
		Filename:    "d1.md",
	}}
	router := newTestRouter(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data/d1/export?format=markdown", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="d1.md"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "# Lịch họp", rec.Body.String())
}

func TestExport_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: xml", entity.ErrUnsupportedFormat), http.StatusBadRequest},
		{fmt.Errorf("get document: %w", entity.ErrDocumentNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		router := newTestRouter(&fakeDocumentUsecase{exportErr: tc.err})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/data/d1/export?format=xml", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, tc.status, rec.Code, "error %v", tc.err)
	}
}
