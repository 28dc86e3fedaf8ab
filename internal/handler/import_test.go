package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedaimport/internal/domain"
	"vedaimport/internal/domain/models/scripture"
	importSvc "vedaimport/internal/domain/services/importer"
)

type fakeImportService struct {
	err       error
	preview   *importSvc.PreviewRequest
	files     []string
	fileOpts  *importSvc.FileOptions
	site      *importSvc.SiteRequest
	persisted *importSvc.PersistRequest
}

func (f *fakeImportService) result() *importSvc.ImportResult {
	return &importSvc.ImportResult{
		JobID:    "job-1",
		Chapters: []scripture.Chapter{{Number: 1, Title: "Перша"}},
		Stats:    importSvc.ImportStats{Chapters: 1},
	}
}

func (f *fakeImportService) Preview(ctx context.Context, req *importSvc.PreviewRequest) (*importSvc.ImportResult, error) {
	f.preview = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeImportService) ProcessFiles(ctx context.Context, files []importSvc.UploadedFile, opts *importSvc.FileOptions) (*importSvc.ImportResult, error) {
	for _, file := range files {
		body, _ := io.ReadAll(file.Content)
		f.files = append(f.files, file.Filename+"="+string(body))
	}
	f.fileOpts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeImportService) ImportSite(ctx context.Context, req *importSvc.SiteRequest) (*importSvc.ImportResult, error) {
	f.site = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result(), nil
}

func (f *fakeImportService) Persist(ctx context.Context, req *importSvc.PersistRequest) (*importSvc.PersistResult, error) {
	f.persisted = req
	if f.err != nil {
		return nil, f.err
	}
	return &importSvc.PersistResult{BookID: "book-1", Chapters: len(req.Chapters)}, nil
}

func (f *fakeImportService) Templates() []importSvc.TemplateInfo {
	return []importSvc.TemplateInfo{{ID: "bhagavad-gita", Name: "Бгаґавад-ґіта", Builtin: true}}
}

func (f *fakeImportService) Sources() []string {
	return []string{"bhaktivinoda", "kksongs", "wisdomlib"}
}

func newTestHandler(svc *fakeImportService) *ImportHandler {
	return NewImportHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPreview(t *testing.T) {
	svc := &fakeImportService{}
	h := newTestHandler(svc)

	body := `{"text":"ГЛАВА ПЕРША\nВІРШ 1","template_id":"bhagavad-gita"}`
	req := httptest.NewRequest(http.MethodPost, "/api/import/preview?format=markdown", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.preview)
	assert.Equal(t, "bhagavad-gita", svc.preview.TemplateID)
	assert.Equal(t, importSvc.FormatMarkdown, svc.preview.Format)

	var got importSvc.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "job-1", got.JobID)
	assert.Len(t, got.Chapters, 1)
}

func TestPreview_BadJSON(t *testing.T) {
	h := newTestHandler(&fakeImportService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"text":`},
		{"unknown field", `{"text":"x","bogus":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/import/preview", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Preview(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"typed validation", &domain.ValidationError{Message: "text is required"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: bad slug", domain.ErrValidation), http.StatusBadRequest},
		{"not found", &domain.NotFoundError{Message: "template not found"}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("fetch: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unavailable", &domain.UnavailableError{Message: "persistence is disabled"}, http.StatusServiceUnavailable},
		{"conflict", &domain.ConflictError{Message: "exists", ResourceType: "book"}, http.StatusConflict},
		{"deadline", fmt.Errorf("import: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeImportService{err: tt.err}
			h := newTestHandler(svc)
			req := httptest.NewRequest(http.MethodPost, "/api/import/site", strings.NewReader(`{"source":"kksongs","url":"https://kksongs.org/songs/a/x.html"}`))
			rec := httptest.NewRecorder()
			h.Site(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			var problem map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.EqualValues(t, tt.want, problem["status"])
		})
	}
}

func TestHandleError_HidesInternalDetail(t *testing.T) {
	h := newTestHandler(&fakeImportService{err: fmt.Errorf("dial tcp: secret-host")})
	req := httptest.NewRequest(http.MethodPost, "/api/import/site", strings.NewReader(`{"source":"kksongs","url":"https://kksongs.org"}`))
	rec := httptest.NewRecorder()
	h.Site(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-host")
}

func TestFiles(t *testing.T) {
	svc := &fakeImportService{}
	h := newTestHandler(svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range map[string]string{"a.txt": "first", "b.txt": "second"} {
		part, err := mw.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("template_id", "srimad-bhagavatam"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import/files?format=markdown", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Files(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []string{"a.txt=first", "b.txt=second"}, svc.files)
	require.NotNil(t, svc.fileOpts)
	assert.Equal(t, "srimad-bhagavatam", svc.fileOpts.TemplateID)
	assert.Equal(t, importSvc.FormatMarkdown, svc.fileOpts.Format)
}

func TestFiles_NoFiles(t *testing.T) {
	h := newTestHandler(&fakeImportService{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("template_id", "bhagavad-gita"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import/files", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Files(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFiles_NotMultipart(t *testing.T) {
	h := newTestHandler(&fakeImportService{})
	req := httptest.NewRequest(http.MethodPost, "/api/import/files", strings.NewReader("plain"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.Files(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPersist(t *testing.T) {
	svc := &fakeImportService{}
	h := newTestHandler(svc)

	body := `{"book":{"slug":"gita","title_uk":"Ґіта"},"canto_number":2,"chapters":[{"chapter_number":1,"title":"Перша","chapter_type":"verses","verses":[]}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/import/persist", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Persist(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, svc.persisted)
	assert.Equal(t, "gita", svc.persisted.Book.Slug)
	require.NotNil(t, svc.persisted.CantoNumber)
	assert.Equal(t, 2, *svc.persisted.CantoNumber)

	var got importSvc.PersistResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "book-1", got.BookID)
	assert.Equal(t, 1, got.Chapters)
}

func TestListTemplatesAndHealth(t *testing.T) {
	h := newTestHandler(&fakeImportService{})

	rec := httptest.NewRecorder()
	h.ListTemplates(rec, httptest.NewRequest(http.MethodGet, "/api/templates", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Templates []importSvc.TemplateInfo `json:"templates"`
		Sources   []string                 `json:"sources"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Templates, 1)
	assert.Equal(t, []string{"bhaktivinoda", "kksongs", "wisdomlib"}, got.Sources)

	rec = httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
