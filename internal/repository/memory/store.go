package memory

import (
	"log/slog"

	"docvault/internal/domain/models/catalog"
)

// Store is the process-wide in-memory state behind both repositories:
// the folder forest and the document collection. It is created empty at
// startup and discarded on shutdown.
//
// The store is single-owner and performs no locking of its own. Callers
// that share it across goroutines (the HTTP adapter) must serialize
// access externally.
type Store struct {
	folders    []*catalog.Folder
	folderByID map[string]*catalog.Folder

	documents []*catalog.Document
	docByID   map[string]*catalog.Document
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		folderByID: make(map[string]*catalog.Folder),
		docByID:    make(map[string]*catalog.Document),
	}
}

// RepositoryConfig holds shared dependencies for repositories
type RepositoryConfig struct {
	Store  *Store
	Logger *slog.Logger
}
