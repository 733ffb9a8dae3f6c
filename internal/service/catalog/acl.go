package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"docvault/internal/domain"
	models "docvault/internal/domain/models/catalog"
	catalogRepo "docvault/internal/domain/repositories/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

// UnknownUserLabel is the display name for ACL entries whose user the
// directory does not know. The entry itself is kept; the ACL is the
// source of truth and the directory is advisory.
const UnknownUserLabel = "Unknown"

// aclService implements the ACLService interface
type aclService struct {
	docRepo   catalogRepo.DocumentRepository
	directory catalogSvc.UserDirectory
	logger    *slog.Logger
}

// NewACLService creates a new ACL service
func NewACLService(
	docRepo catalogRepo.DocumentRepository,
	directory catalogSvc.UserDirectory,
	logger *slog.Logger,
) catalogSvc.ACLService {
	return &aclService{
		docRepo:   docRepo,
		directory: directory,
		logger:    logger,
	}
}

// AssignPermission grants userID the given permission, replacing any
// prior entry for that user. Replace-not-merge: the old entry is
// removed and the new one appended, so a reassigned user moves to the
// end of the list.
func (s *aclService) AssignPermission(ctx context.Context, docID string, req *catalogSvc.AssignPermissionRequest) (*models.Document, error) {
	if req.UserID == "" {
		return nil, &domain.ValidationError{Message: "user id cannot be blank"}
	}

	permission, err := models.ParsePermission(req.Permission)
	if err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.ACLEntry, 0, len(doc.ACL)+1)
	for _, entry := range doc.ACL {
		if entry.UserID != req.UserID {
			kept = append(kept, entry)
		}
	}
	doc.ACL = append(kept, models.ACLEntry{UserID: req.UserID, Permission: permission})
	doc.UpdatedAt = time.Now()

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("permission assigned",
		"doc_id", docID,
		"user_id", req.UserID,
		"permission", permission,
	)

	return doc, nil
}

// ListPermissions returns the document's ACL joined against the user
// directory, in ACL order
func (s *aclService) ListPermissions(ctx context.Context, docID string) ([]catalogSvc.PermissionView, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}

	views := make([]catalogSvc.PermissionView, 0, len(doc.ACL))
	for _, entry := range doc.ACL {
		view := catalogSvc.PermissionView{
			UserID:     entry.UserID,
			UserName:   UnknownUserLabel,
			Permission: entry.Permission,
		}
		if user, ok := s.directory.Lookup(entry.UserID); ok {
			view.UserName = user.Name
			view.Known = true
		}
		views = append(views, view)
	}
	return views, nil
}
