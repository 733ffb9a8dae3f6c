package memory

import (
	"context"
	"fmt"

	"docvault/internal/domain"
	"docvault/internal/domain/models/catalog"
	"docvault/internal/domain/repositories"
	catalogRepo "docvault/internal/domain/repositories/catalog"
)

// MemoryDocumentRepository implements the DocumentRepository interface
// over the in-memory store. Documents are handed out as clones so a
// caller can never reach store state through a returned pointer.
type MemoryDocumentRepository struct {
	store *Store
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) catalogRepo.DocumentRepository {
	return &MemoryDocumentRepository{store: config.Store}
}

// Create appends a new document to the collection
func (r *MemoryDocumentRepository) Create(ctx context.Context, doc *catalog.Document) error {
	if _, exists := r.store.docByID[doc.ID]; exists {
		return fmt.Errorf("document %s already exists", doc.ID)
	}

	stored := doc.Clone()
	r.store.documents = append(r.store.documents, stored)
	r.store.docByID[stored.ID] = stored
	return nil
}

// GetByID retrieves a document by ID
func (r *MemoryDocumentRepository) GetByID(ctx context.Context, id string) (*catalog.Document, error) {
	stored, ok := r.store.docByID[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return stored.Clone(), nil
}

// Update replaces an existing document in place, preserving its
// position in the insertion order
func (r *MemoryDocumentRepository) Update(ctx context.Context, doc *catalog.Document) error {
	stored, ok := r.store.docByID[doc.ID]
	if !ok {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}

	updated := doc.Clone()
	updated.CreatedAt = stored.CreatedAt
	*stored = *updated
	return nil
}

// Delete removes a document
func (r *MemoryDocumentRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.store.docByID[id]; !ok {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	delete(r.store.docByID, id)
	kept := r.store.documents[:0]
	for _, d := range r.store.documents {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	r.store.documents = kept
	return nil
}

// List retrieves all documents in insertion order
func (r *MemoryDocumentRepository) List(ctx context.Context) ([]catalog.Document, error) {
	out := make([]catalog.Document, 0, len(r.store.documents))
	for _, d := range r.store.documents {
		out = append(out, *d.Clone())
	}
	return out, nil
}

// ListByFolder lists documents whose folder matches exactly
func (r *MemoryDocumentRepository) ListByFolder(ctx context.Context, folderID *string) ([]catalog.Document, error) {
	out := make([]catalog.Document, 0)
	for _, d := range r.store.documents {
		if repositories.SameRef(d.Metadata.FolderID, folderID) {
			out = append(out, *d.Clone())
		}
	}
	return out, nil
}

// ClearFolderRefs clears the folder reference of every document
// pointing at one of the given folders
func (r *MemoryDocumentRepository) ClearFolderRefs(ctx context.Context, folderIDs []string) (int, error) {
	deleted := make(map[string]bool, len(folderIDs))
	for _, id := range folderIDs {
		deleted[id] = true
	}

	detached := 0
	for _, d := range r.store.documents {
		if d.Metadata.FolderID != nil && deleted[*d.Metadata.FolderID] {
			d.Metadata.FolderID = nil
			detached++
		}
	}
	return detached, nil
}
