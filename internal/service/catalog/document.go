package catalog

import (
	"context"
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

// documentService implements the DocumentService interface
type documentService struct {
	docRepo    catalogRepo.DocumentRepository
	folderRepo catalogRepo.FolderRepository
	logger     *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo catalogRepo.DocumentRepository,
	folderRepo catalogRepo.FolderRepository,
	logger *slog.Logger,
) catalogSvc.DocumentService {
	return &documentService{
		docRepo:    docRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// CreateDocument catalogs an already-validated upload. Raw tags are
// split on commas, trimmed, empties dropped and duplicates collapsed,
// matching what AddTag would produce one tag at a time.
func (s *documentService) CreateDocument(ctx context.Context, req *catalogSvc.CreateDocumentRequest) (*models.Document, error) {
	// Normalize empty string folder_id to nil for folder-less documents
	if req.FolderID != nil && *req.FolderID == "" {
		req.FolderID = nil
	}
	req.Title = strings.TrimSpace(req.Title)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	// Folder must exist at the time of assignment
	if req.FolderID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.FolderID); err != nil {
			return nil, fmt.Errorf("folder: %w", err)
		}
	}

	doc := &models.Document{
		ID:   uuid.NewString(),
		File: req.File,
		Metadata: models.Metadata{
			Title:       req.Title,
			Description: strings.TrimSpace(req.Description),
			FolderID:    req.FolderID,
			Tags:        SplitTags(req.RawTags),
		},
		// Every document owns its own ACL slice; empty, never shared
		ACL:       []models.ACLEntry{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created",
		"id", doc.ID,
		"title", doc.Metadata.Title,
		"file", doc.File.Name,
		"folder_id", doc.Metadata.FolderID,
		"tags", len(doc.Metadata.Tags),
	)

	return doc, nil
}

// GetDocument retrieves a document with its computed folder path
func (s *documentService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachPath(ctx, doc)
	return doc, nil
}

// DeleteDocument removes a document; nothing cascades
func (s *documentService) DeleteDocument(ctx context.Context, id string) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("document deleted", "id", id)
	return nil
}

// ListDocuments lists all documents in insertion order
func (s *documentService) ListDocuments(ctx context.Context) ([]models.Document, error) {
	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		s.attachPath(ctx, &docs[i])
	}
	return docs, nil
}

// ListByFolder lists documents in exactly the given folder
func (s *documentService) ListByFolder(ctx context.Context, folderID *string) ([]models.Document, error) {
	docs, err := s.docRepo.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		s.attachPath(ctx, &docs[i])
	}
	return docs, nil
}

// attachPath fills in the display path of the document's folder
func (s *documentService) attachPath(ctx context.Context, doc *models.Document) {
	if doc.Metadata.FolderID == nil {
		doc.Path = ""
		return
	}

	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		s.logger.Warn("failed to compute document path", "doc_id", doc.ID, "error", err)
		return
	}
	doc.Path = joinPath(pathNames(indexFolders(folders), *doc.Metadata.FolderID))
}

// validateCreateRequest validates a document creation request
func (s *documentService) validateCreateRequest(req *catalogSvc.CreateDocumentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title cannot be blank"),
			validation.Length(1, config.MaxTitleLength),
		),
	)
}

// SplitTags turns raw comma-separated tag input into a normalized tag
// list: segments trimmed, empties dropped, duplicates collapsed while
// keeping first-seen order.
func SplitTags(raw string) []string {
	tags := make([]string, 0)
	seen := make(map[string]bool)
	for _, segment := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(segment)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
