package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	catalogSvc "docvault/internal/domain/services/catalog"
	"docvault/internal/httputil"
)

// ACLHandler handles permission assignment and listing on a document
type ACLHandler struct {
	aclService catalogSvc.ACLService
	directory  catalogSvc.UserDirectory
	logger     *slog.Logger
}

// NewACLHandler creates a new ACL handler
func NewACLHandler(
	aclService catalogSvc.ACLService,
	directory catalogSvc.UserDirectory,
	logger *slog.Logger,
) *ACLHandler {
	return &ACLHandler{
		aclService: aclService,
		directory:  directory,
		logger:     logger,
	}
}

// AssignPermission grants a user one permission level on a document,
// replacing any prior grant for that user
// PUT /api/documents/{id}/permissions
func (h *ACLHandler) AssignPermission(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	var req catalogSvc.AssignPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := h.aclService.AssignPermission(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}

// ListPermissions returns a document's ACL joined with the user
// directory
// GET /api/documents/{id}/permissions
func (h *ACLHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "document id is required")
		return
	}

	views, err := h.aclService.ListPermissions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, views)
}

// ListUsers returns the user directory for the permission picker
// GET /api/users
func (h *ACLHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.directory.Users())
}
