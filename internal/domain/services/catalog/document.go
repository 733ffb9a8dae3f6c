package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// DocumentService owns the document collection and per-document
// metadata. Tag and ACL sub-mutations are delegated to TagService and
// ACLService.
type DocumentService interface {
	// CreateDocument catalogs an already-validated upload. RawTags is
	// the comma-separated tag input from the upload form; it is split,
	// trimmed and deduplicated here.
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*catalog.Document, error)

	// GetDocument retrieves a document with its computed folder path
	GetDocument(ctx context.Context, id string) (*catalog.Document, error)

	// DeleteDocument removes a document. Documents are leaves; nothing
	// cascades.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments lists all documents in insertion order
	ListDocuments(ctx context.Context) ([]catalog.Document, error)

	// ListByFolder lists documents in exactly the given folder
	// (nil = the no-folder bucket), insertion order
	ListByFolder(ctx context.Context, folderID *string) ([]catalog.Document, error)
}

// CreateDocumentRequest represents a document creation request. File is
// the opaque handle produced by the upload adapter.
type CreateDocumentRequest struct {
	File        catalog.FileRef `json:"file"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	FolderID    *string         `json:"folder_id,omitempty"`
	RawTags     string          `json:"tags,omitempty"` // comma-separated
}
