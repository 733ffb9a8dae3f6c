package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	catalogSvc "docvault/internal/domain/services/catalog"
	"docvault/internal/httputil"
)

// TagHandler handles tag mutations on a document
type TagHandler struct {
	tagService catalogSvc.TagService
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService catalogSvc.TagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger,
	}
}

// AddTag adds a tag to a document. Duplicate and blank tags are
// accepted and ignored, so the response is the document either way.
// POST /api/documents/{id}/tags
func (h *TagHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	var req struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.tagService.AddTag(r.Context(), id, req.Tag)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// RemoveTag removes a tag from a document; removing an absent tag is a
// no-op
// DELETE /api/documents/{id}/tags/{tag}
func (h *TagHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tag := r.PathValue("tag")
	if id == "" || tag == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id and tag are required")
		return
	}

	doc, err := h.tagService.RemoveTag(r.Context(), id, tag)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
