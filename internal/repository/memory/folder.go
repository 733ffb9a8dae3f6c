package memory

import (
	"context"
	"fmt"

	"docvault/internal/domain"
	"docvault/internal/domain/models/catalog"
	"docvault/internal/domain/repositories"
	catalogRepo "docvault/internal/domain/repositories/catalog"
)

// MemoryFolderRepository implements the FolderRepository interface over
// the in-memory store. Insertion order of the backing slice is the
// listing order; no implicit sort by name or id.
type MemoryFolderRepository struct {
	store *Store
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) catalogRepo.FolderRepository {
	return &MemoryFolderRepository{store: config.Store}
}

// Create appends a new folder to the collection
func (r *MemoryFolderRepository) Create(ctx context.Context, folder *catalog.Folder) error {
	if _, exists := r.store.folderByID[folder.ID]; exists {
		return fmt.Errorf("folder %s already exists", folder.ID)
	}

	stored := *folder
	r.store.folders = append(r.store.folders, &stored)
	r.store.folderByID[stored.ID] = &stored
	return nil
}

// GetByID retrieves a folder by ID
func (r *MemoryFolderRepository) GetByID(ctx context.Context, id string) (*catalog.Folder, error) {
	stored, ok := r.store.folderByID[id]
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	out := *stored
	return &out, nil
}

// Update replaces a folder's name and parent
func (r *MemoryFolderRepository) Update(ctx context.Context, folder *catalog.Folder) error {
	stored, ok := r.store.folderByID[folder.ID]
	if !ok {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}

	stored.Name = folder.Name
	stored.ParentID = folder.ParentID
	stored.UpdatedAt = folder.UpdatedAt
	return nil
}

// Delete removes the given folders from the collection. Unknown ids are
// ignored; the folder service computes the exact descendant set before
// calling.
func (r *MemoryFolderRepository) Delete(ctx context.Context, ids []string) error {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	kept := r.store.folders[:0]
	for _, f := range r.store.folders {
		if doomed[f.ID] {
			delete(r.store.folderByID, f.ID)
			continue
		}
		kept = append(kept, f)
	}
	r.store.folders = kept
	return nil
}

// List retrieves all folders in insertion order
func (r *MemoryFolderRepository) List(ctx context.Context) ([]catalog.Folder, error) {
	out := make([]catalog.Folder, 0, len(r.store.folders))
	for _, f := range r.store.folders {
		out = append(out, *f)
	}
	return out, nil
}

// ListChildren lists immediate child folders (nil = root level)
func (r *MemoryFolderRepository) ListChildren(ctx context.Context, parentID *string) ([]catalog.Folder, error) {
	out := make([]catalog.Folder, 0)
	for _, f := range r.store.folders {
		if repositories.SameRef(f.ParentID, parentID) {
			out = append(out, *f)
		}
	}
	return out, nil
}
