package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// TagService enforces set semantics over a single document's tags.
type TagService interface {
	// AddTag trims rawTag and appends it to the document's tag list.
	// An empty result or an exact-match duplicate is a no-op, not an
	// error; the returned document reflects the final state either way.
	AddTag(ctx context.Context, docID, rawTag string) (*catalog.Document, error)

	// RemoveTag removes the exact-match tag. Removing an absent tag is
	// a no-op; the usual trigger is a click on an already-rendered tag.
	RemoveTag(ctx context.Context, docID, tag string) (*catalog.Document, error)
}
