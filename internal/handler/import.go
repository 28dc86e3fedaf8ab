package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"vedaimport/internal/config"
	importSvc "vedaimport/internal/domain/services/importer"
	"vedaimport/internal/httputil"
)

// ImportHandler serves the import API: text previews, file uploads, site
// imports and persistence.
type ImportHandler struct {
	importService importSvc.ImportService
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService importSvc.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// HealthCheck reports liveness.
// GET /health
func (h *ImportHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTemplates lists the registered import templates.
// GET /api/templates
func (h *ImportHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"templates": h.importService.Templates(),
		"sources":   h.importService.Sources(),
	})
}

// Preview segments pasted text.
// POST /api/import/preview
//
// Query parameters:
//   - format: optional, "markdown" renders content and commentary as Markdown
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req importSvc.PreviewRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Format = r.URL.Query().Get("format")

	result, err := h.importService.Preview(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "preview failed", err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Files imports uploaded files, either zip archives or single documents.
// POST /api/import/files
//
// Multipart fields:
//   - files[] (or files): one or more uploads
//   - template_id: optional, defaults to the first preset
//
// Query parameters:
//   - format: optional, "markdown"
func (h *ImportHandler) Files(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
			return
		}
		httputil.RespondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := append(r.MultipartForm.File["files[]"], r.MultipartForm.File["files"]...)
	if len(headers) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "no files provided")
		return
	}

	log := httputil.Logger(r, h.logger)
	log.Info("starting file import", "file_count", len(headers))

	// All files are processed before this function returns, so the deferred
	// closes are safe.
	files := make([]importSvc.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			log.Error("failed to open uploaded file", "file", fh.Filename, "error", err)
			httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to open file %s", fh.Filename))
			return
		}
		defer func() { _ = f.Close() }()

		files = append(files, importSvc.UploadedFile{Filename: fh.Filename, Content: f})
	}

	opts := &importSvc.FileOptions{
		TemplateID: r.FormValue("template_id"),
		Format:     r.URL.Query().Get("format"),
	}
	result, err := h.importService.ProcessFiles(r.Context(), files, opts)
	if err != nil {
		h.fail(w, r, "file import failed", err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Site imports chapters from a supported website.
// POST /api/import/site
func (h *ImportHandler) Site(w http.ResponseWriter, r *http.Request) {
	var req importSvc.SiteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Format = r.URL.Query().Get("format")

	httputil.Logger(r, h.logger).Info("starting site import", "source", req.Source, "url", req.URL)

	result, err := h.importService.ImportSite(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "site import failed", err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

// Persist upserts imported chapters into the database.
// POST /api/import/persist
func (h *ImportHandler) Persist(w http.ResponseWriter, r *http.Request) {
	var req importSvc.PersistRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.importService.Persist(r.Context(), &req)
	if err != nil {
		h.fail(w, r, "persist failed", err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, result)
}

func (h *ImportHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	httputil.Logger(r, h.logger).Warn(msg, "path", r.URL.Path, "error", err)
	handleError(w, r, err)
}
