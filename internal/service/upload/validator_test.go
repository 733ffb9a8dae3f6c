package upload

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docvault/internal/domain"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(
		[]string{"application/pdf", "image/png", "image/jpeg"},
		10*1024*1024,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestValidateAcceptsAllowedTypes(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name        string
		contentType string
	}{
		{name: "pdf", contentType: "application/pdf"},
		{name: "png", contentType: "image/png"},
		{name: "jpeg", contentType: "image/jpeg"},
		{name: "parameters ignored", contentType: "application/pdf; charset=binary"},
		{name: "case insensitive", contentType: "Application/PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := v.Validate(&CandidateFile{
				Name:        "scan.pdf",
				ContentType: tt.contentType,
				Size:        4096,
			})
			require.NoError(t, err)
			assert.Equal(t, "scan.pdf", ref.Name)
			assert.Equal(t, int64(4096), ref.Size)
		})
	}
}

func TestValidateRejectsDisallowedType(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate(&CandidateFile{
		Name:        "payload.exe",
		ContentType: "application/octet-stream",
		Size:        10,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateRejectsOversizedFile(t *testing.T) {
	v := newValidator(t)

	_, err := v.Validate(&CandidateFile{
		Name:        "huge.pdf",
		ContentType: "application/pdf",
		Size:        10*1024*1024 + 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Exactly at the cap is fine
	_, err = v.Validate(&CandidateFile{
		Name:        "fits.pdf",
		ContentType: "application/pdf",
		Size:        10 * 1024 * 1024,
	})
	assert.NoError(t, err)
}
