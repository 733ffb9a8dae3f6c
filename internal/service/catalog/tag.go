package catalog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	models "docvault/internal/domain/models/catalog"
	catalogRepo "docvault/internal/domain/repositories/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

// tagService implements the TagService interface
type tagService struct {
	docRepo catalogRepo.DocumentRepository
	logger  *slog.Logger
}

// NewTagService creates a new tag service
func NewTagService(docRepo catalogRepo.DocumentRepository, logger *slog.Logger) catalogSvc.TagService {
	return &tagService{docRepo: docRepo, logger: logger}
}

// AddTag appends the trimmed tag to the document's tag list. Empty
// input and exact-match duplicates leave the document untouched.
func (s *tagService) AddTag(ctx context.Context, docID, rawTag string) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(rawTag)
	if tag == "" {
		return doc, nil
	}
	for _, existing := range doc.Metadata.Tags {
		if existing == tag {
			return doc, nil
		}
	}

	doc.Metadata.Tags = append(doc.Metadata.Tags, tag)
	doc.UpdatedAt = time.Now()

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("tag added", "doc_id", docID, "tag", tag)
	return doc, nil
}

// RemoveTag removes the exact-match tag; removing an absent tag is a
// no-op by design, since the usual trigger is a click on a rendered tag
func (s *tagService) RemoveTag(ctx context.Context, docID, tag string) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(doc.Metadata.Tags))
	removed := false
	for _, existing := range doc.Metadata.Tags {
		if existing == tag {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return doc, nil
	}

	doc.Metadata.Tags = kept
	doc.UpdatedAt = time.Now()

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("tag removed", "doc_id", docID, "tag", tag)
	return doc, nil
}
