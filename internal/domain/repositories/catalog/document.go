package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create appends a new document to the collection
	Create(ctx context.Context, doc *catalog.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id string) (*catalog.Document, error)

	// Update replaces an existing document
	Update(ctx context.Context, doc *catalog.Document) error

	// Delete removes a document
	Delete(ctx context.Context, id string) error

	// List retrieves all documents in insertion order
	List(ctx context.Context) ([]catalog.Document, error)

	// ListByFolder lists documents whose folder matches exactly
	// (nil matches documents with no folder)
	ListByFolder(ctx context.Context, folderID *string) ([]catalog.Document, error)

	// ClearFolderRefs clears the folder reference of every document
	// pointing at one of the given folder ids, returning how many
	// documents were detached
	ClearFolderRefs(ctx context.Context, folderIDs []string) (int, error)
}
