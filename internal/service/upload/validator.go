package upload

import (
	"fmt"
	"log/slog"
	"mime"
	"strings"

	"docvault/internal/domain"
	"docvault/internal/domain/models/catalog"
)

// CandidateFile describes a file offered for upload, before the catalog
// ever sees it. Content stays behind the boundary; the catalog only
// receives the FileRef descriptor.
type CandidateFile struct {
	Name        string
	ContentType string
	Size        int64
}

// Validator is the upload adapter's boundary check: an allow-list of
// MIME types and a maximum byte size. Rejection here is a boundary
// concern, not a catalog invariant.
type Validator struct {
	allowedTypes map[string]bool
	maxSize      int64
	logger       *slog.Logger
}

// NewValidator creates an upload validator. allowedTypes holds plain
// media types ("application/pdf"); maxSize is in bytes.
func NewValidator(allowedTypes []string, maxSize int64, logger *slog.Logger) *Validator {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return &Validator{
		allowedTypes: allowed,
		maxSize:      maxSize,
		logger:       logger,
	}
}

// Validate checks the candidate against the allow-list and size cap,
// returning the opaque FileRef the catalog stores. Content-Type
// parameters (charset etc.) are ignored when matching.
func (v *Validator) Validate(file *CandidateFile) (catalog.FileRef, error) {
	mediaType, _, err := mime.ParseMediaType(file.ContentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(file.ContentType))
	}

	if !v.allowedTypes[mediaType] {
		v.logger.Debug("upload rejected", "file", file.Name, "content_type", mediaType)
		return catalog.FileRef{}, &domain.ValidationError{
			Message: fmt.Sprintf("unsupported file type %q", mediaType),
		}
	}

	if file.Size > v.maxSize {
		v.logger.Debug("upload rejected", "file", file.Name, "size", file.Size, "max", v.maxSize)
		return catalog.FileRef{}, &domain.ValidationError{
			Message: fmt.Sprintf("file is too large: %d bytes (max %d)", file.Size, v.maxSize),
		}
	}

	return catalog.FileRef{
		Name:        file.Name,
		ContentType: mediaType,
		Size:        file.Size,
	}, nil
}

// MaxSize returns the configured size cap in bytes
func (v *Validator) MaxSize() int64 {
	return v.maxSize
}
