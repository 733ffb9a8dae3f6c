package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"docvault/internal/config"
	"docvault/internal/domain"
	models "docvault/internal/domain/models/catalog"
	catalogRepo "docvault/internal/domain/repositories/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type folderService struct {
	folderRepo catalogRepo.FolderRepository
	docRepo    catalogRepo.DocumentRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo catalogRepo.FolderRepository,
	docRepo catalogRepo.DocumentRepository,
	logger *slog.Logger,
) catalogSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, req *catalogSvc.CreateFolderRequest) (*models.Folder, error) {
	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	// Parent must exist before anything is appended
	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}

	folder := &models.Folder{
		ID:        uuid.NewString(),
		ParentID:  req.ParentID,
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	folder.Path = s.displayPath(ctx, folder.ID)

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"path", folder.Path,
	)

	return folder, nil
}

// GetFolder retrieves a folder with its computed path
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	folder.Path = s.displayPath(ctx, folder.ID)
	return folder, nil
}

// UpdateFolder renames and/or moves a folder. All checks run before the
// first write, so a rejected request leaves the tree untouched.
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *catalogSvc.UpdateFolderRequest) (*models.Folder, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		folder.Name = strings.TrimSpace(*req.Name)
	}

	// Tri-state: only touch the parent if the field was present
	if req.ParentID.Present {
		if req.ParentID.Value != nil && *req.ParentID.Value != "" {
			parent, err := s.folderRepo.GetByID(ctx, *req.ParentID.Value)
			if err != nil {
				return nil, fmt.Errorf("parent folder: %w", err)
			}

			if err := s.checkNoCycle(ctx, id, parent.ID); err != nil {
				return nil, err
			}

			folder.ParentID = &parent.ID
			s.logger.Debug("moving folder", "folder_id", id, "new_parent_id", parent.ID)
		} else {
			// null = move to root
			folder.ParentID = nil
			s.logger.Debug("moving folder to root", "folder_id", id)
		}
	}

	folder.UpdatedAt = time.Now()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	folder.Path = s.displayPath(ctx, folder.ID)

	s.logger.Info("folder updated",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"path", folder.Path,
	)

	return folder, nil
}

// DeleteFolder removes a folder and every folder reachable from it,
// then detaches documents referencing any removed folder. Detached
// documents become folder-less; they are not re-parented to a surviving
// ancestor.
func (s *folderService) DeleteFolder(ctx context.Context, id string) error {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	doomed, err := s.descendantSet(ctx, id)
	if err != nil {
		return err
	}

	if err := s.folderRepo.Delete(ctx, doomed); err != nil {
		return err
	}

	detached, err := s.docRepo.ClearFolderRefs(ctx, doomed)
	if err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"id", id,
		"name", folder.Name,
		"folders_removed", len(doomed),
		"documents_detached", detached,
	)

	return nil
}

// ListFolders lists all folders in insertion order with computed paths
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := indexFolders(folders)
	for i := range folders {
		folders[i].Path = joinPath(pathNames(byID, folders[i].ID))
	}
	return folders, nil
}

// ResolvePath returns the folder names from root to id. An unknown id
// yields an empty path rather than an error; this is a display query.
func (s *folderService) ResolvePath(ctx context.Context, id string) ([]string, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pathNames(indexFolders(folders), id), nil
}

// AvailableParents returns every folder that would not introduce a
// cycle as the parent of folder id: all folders minus the folder itself
// and its descendants. An empty id (the create case) excludes nothing.
func (s *folderService) AvailableParents(ctx context.Context, id string) ([]models.Folder, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if id == "" {
		return folders, nil
	}

	doomed, err := s.descendantSet(ctx, id)
	if err != nil {
		return nil, err
	}
	excluded := make(map[string]bool, len(doomed))
	for _, d := range doomed {
		excluded[d] = true
	}

	out := make([]models.Folder, 0, len(folders))
	for _, f := range folders {
		if !excluded[f.ID] {
			out = append(out, f)
		}
	}
	return out, nil
}

// descendantSet collects id plus all folders reachable through the
// parent relation. An explicit worklist over a children index built
// once per call keeps memory bounded on deep trees.
func (s *folderService) descendantSet(ctx context.Context, id string) ([]string, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[string][]string, len(folders))
	for _, f := range folders {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	set := []string{id}
	stack := []string{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[current] {
			set = append(set, child)
			stack = append(stack, child)
		}
	}
	return set, nil
}

// checkNoCycle rejects a move of folderID under newParentID when the
// new parent is the folder itself or one of its descendants
func (s *folderService) checkNoCycle(ctx context.Context, folderID, newParentID string) error {
	if folderID == newParentID {
		return &domain.CycleError{Message: "cannot make a folder its own parent"}
	}

	doomed, err := s.descendantSet(ctx, folderID)
	if err != nil {
		return err
	}
	for _, id := range doomed {
		if id == newParentID {
			return &domain.CycleError{Message: "cannot move a folder into its own descendant"}
		}
	}
	return nil
}

// displayPath computes the display path for a folder, falling back to
// the bare id's name on a degraded read
func (s *folderService) displayPath(ctx context.Context, id string) string {
	names, err := s.ResolvePath(ctx, id)
	if err != nil || len(names) == 0 {
		s.logger.Warn("failed to compute path", "folder_id", id, "error", err)
		if folder, gerr := s.folderRepo.GetByID(ctx, id); gerr == nil {
			return folder.Name
		}
		return ""
	}
	return joinPath(names)
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *catalogSvc.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
		),
	)
}

// validateUpdateRequest validates a folder update request
func (s *folderService) validateUpdateRequest(req *catalogSvc.UpdateFolderRequest) error {
	if req.Name == nil && !req.ParentID.Present {
		return errors.New("at least one field must be provided")
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		return validation.Validate(trimmed,
			validation.Required.Error("folder name cannot be blank"),
			validation.Length(1, config.MaxFolderNameLength),
		)
	}
	return nil
}

// indexFolders builds an id index over a folder listing
func indexFolders(folders []models.Folder) map[string]models.Folder {
	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	return byID
}

// pathNames walks parent links upward from id, then reverses. Unknown
// ids produce an empty slice.
func pathNames(byID map[string]models.Folder, id string) []string {
	var reversed []string
	current, ok := byID[id]
	for ok {
		reversed = append(reversed, current.Name)
		if current.ParentID == nil {
			break
		}
		current, ok = byID[*current.ParentID]
	}

	names := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		names = append(names, reversed[i])
	}
	return names
}

// joinPath renders a path name sequence as a display string
func joinPath(names []string) string {
	return strings.Join(names, " / ")
}
