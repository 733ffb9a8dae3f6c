package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
	"docvault/internal/httputil"
)

// FolderService handles folder tree business logic
type FolderService interface {
	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*catalog.Folder, error)

	// GetFolder retrieves a folder with its computed path
	GetFolder(ctx context.Context, id string) (*catalog.Folder, error)

	// UpdateFolder renames and/or moves a folder. Name and parent are
	// replaced together; a move that would create a cycle is rejected
	// before anything changes.
	UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*catalog.Folder, error)

	// DeleteFolder removes a folder and all its descendants. Documents
	// referencing a removed folder become folder-less; they are not
	// re-parented.
	DeleteFolder(ctx context.Context, id string) error

	// ListFolders lists all folders in insertion order, paths computed
	ListFolders(ctx context.Context) ([]catalog.Folder, error)

	// ResolvePath returns the folder names from root to id. Unknown ids
	// yield an empty path, not an error; this is a display query.
	ResolvePath(ctx context.Context, id string) ([]string, error)

	// AvailableParents returns every folder that could become the
	// parent of folder id without creating a cycle. With an empty id
	// (create case) all folders qualify.
	AvailableParents(ctx context.Context, id string) ([]catalog.Folder, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"` // nil for root
}

// UpdateFolderRequest represents a folder update request.
// ParentID is tri-state: absent leaves the parent alone, null moves the
// folder to root, a value moves it under that folder.
type UpdateFolderRequest struct {
	Name     *string                 `json:"name,omitempty"`
	ParentID httputil.OptionalString `json:"parent_id"`
}
