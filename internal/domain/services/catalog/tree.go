package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// TreeService builds the nested folder/document projection for the
// presentation layer. Purely derived; it holds no state of its own.
type TreeService interface {
	// GetTree builds and returns the full nested tree
	GetTree(ctx context.Context) (*catalog.TreeNode, error)
}
