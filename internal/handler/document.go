package handler

import (
	"log/slog"
	"net/http"

	catalogSvc "docvault/internal/domain/services/catalog"
	"docvault/internal/httputil"
	"docvault/internal/service/upload"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	docService catalogSvc.DocumentService
	uploads    *upload.Validator
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	docService catalogSvc.DocumentService,
	uploads *upload.Validator,
	logger *slog.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		uploads:    uploads,
		logger:     logger,
	}
}

// HealthCheck reports liveness
// GET /health
func (h *DocumentHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDocument catalogs an uploaded file. The request is multipart:
// the "file" part plus title/description/folder_id/tags form fields.
// The file content is read only far enough to measure it; the catalog
// stores the descriptor.
// POST /api/documents
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	// Cap the whole request at the upload limit plus form overhead
	r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxSize()+1<<20)

	if err := r.ParseMultipartForm(h.uploads.MaxSize()); err != nil {
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	// Boundary validation: allow-list and size cap, before the catalog
	// sees anything
	fileRef, err := h.uploads.Validate(&upload.CandidateFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	req := &catalogSvc.CreateDocumentRequest{
		File:        fileRef,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		RawTags:     r.FormValue("tags"),
	}
	if folderID := r.FormValue("folder_id"); folderID != "" {
		req.FolderID = &folderID
	}

	doc, err := h.docService.CreateDocument(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, doc)
}

// ListDocuments lists documents. With a folder_id query parameter the
// listing is filtered to that folder; an empty folder_id selects the
// no-folder bucket.
// GET /api/documents[?folder_id={id}]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("folder_id") {
		var folderID *string
		if v := query.Get("folder_id"); v != "" {
			folderID = &v
		}

		docs, err := h.docService.ListByFolder(r.Context(), folderID)
		if err != nil {
			handleError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, docs)
		return
	}

	docs, err := h.docService.ListDocuments(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, docs)
}

// GetDocument retrieves a document by ID
// GET /api/documents/{id}
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	doc, err := h.docService.GetDocument(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// DeleteDocument removes a document
// DELETE /api/documents/{id}
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	if err := h.docService.DeleteDocument(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
