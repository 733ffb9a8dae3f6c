package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create appends a new folder to the collection
	Create(ctx context.Context, folder *catalog.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id string) (*catalog.Folder, error)

	// Update replaces a folder's name and parent
	Update(ctx context.Context, folder *catalog.Folder) error

	// Delete removes the given folders from the collection
	Delete(ctx context.Context, ids []string) error

	// List retrieves all folders in insertion order
	List(ctx context.Context) ([]catalog.Folder, error)

	// ListChildren lists immediate child folders (nil = root level)
	ListChildren(ctx context.Context, parentID *string) ([]catalog.Folder, error)
}
