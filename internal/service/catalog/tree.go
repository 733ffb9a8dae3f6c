package catalog

import (
	"context"
	"log/slog"

	models "docvault/internal/domain/models/catalog"
	catalogRepo "docvault/internal/domain/repositories/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo catalogRepo.FolderRepository
	docRepo    catalogRepo.DocumentRepository
	logger     *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo catalogRepo.FolderRepository,
	docRepo catalogRepo.DocumentRepository,
	logger *slog.Logger,
) catalogSvc.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// GetTree builds the nested folder/document tree using a 3-pass
// algorithm: create all folder nodes, nest them, then file documents
// into their folders. Insertion order is preserved at every level.
func (s *treeService) GetTree(ctx context.Context) (*models.TreeNode, error) {
	allFolders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	allDocuments, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// First pass: create all folder nodes
	folderMap := make(map[string]*models.FolderTreeNode, len(allFolders))
	var rootFolderIDs []string
	for _, folder := range allFolders {
		folderMap[folder.ID] = &models.FolderTreeNode{
			ID:        folder.ID,
			Name:      folder.Name,
			ParentID:  folder.ParentID,
			CreatedAt: folder.CreatedAt,
			Folders:   []*models.FolderTreeNode{},
			Documents: []models.DocumentTreeNode{},
		}
	}

	// Second pass: nest folders by connecting children to parents
	for _, folder := range allFolders {
		node := folderMap[folder.ID]
		if folder.ParentID == nil {
			rootFolderIDs = append(rootFolderIDs, folder.ID)
		} else if parent, exists := folderMap[*folder.ParentID]; exists {
			parent.Folders = append(parent.Folders, node)
		}
	}

	// Third pass: add documents to their folders
	rootDocuments := make([]models.DocumentTreeNode, 0)
	for _, doc := range allDocuments {
		docNode := models.DocumentTreeNode{
			ID:        doc.ID,
			Title:     doc.Metadata.Title,
			FolderID:  doc.Metadata.FolderID,
			FileName:  doc.File.Name,
			UpdatedAt: doc.UpdatedAt,
		}

		if doc.Metadata.FolderID == nil {
			rootDocuments = append(rootDocuments, docNode)
		} else if parent, exists := folderMap[*doc.Metadata.FolderID]; exists {
			parent.Documents = append(parent.Documents, docNode)
		}
	}

	rootFolders := make([]*models.FolderTreeNode, 0, len(rootFolderIDs))
	for _, folderID := range rootFolderIDs {
		rootFolders = append(rootFolders, folderMap[folderID])
	}

	s.logger.Debug("tree built",
		"folders", len(allFolders),
		"documents", len(allDocuments),
		"roots", len(rootFolders),
	)

	return &models.TreeNode{
		Folders:   rootFolders,
		Documents: rootDocuments,
	}, nil
}
