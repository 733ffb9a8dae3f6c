package catalog

import (
	"context"

	"docvault/internal/domain/models/catalog"
)

// ACLService enforces the at-most-one-entry-per-user invariant on a
// document's access-control list.
type ACLService interface {
	// AssignPermission grants userID the given permission on the
	// document, replacing any prior entry for that user. The new entry
	// goes to the end of the list.
	AssignPermission(ctx context.Context, docID string, req *AssignPermissionRequest) (*catalog.Document, error)

	// ListPermissions returns the document's ACL joined against the
	// user directory. Entries whose user is unknown to the directory
	// are kept and labeled, never dropped; the ACL is the source of
	// truth.
	ListPermissions(ctx context.Context, docID string) ([]PermissionView, error)
}

// AssignPermissionRequest represents a permission assignment
type AssignPermissionRequest struct {
	UserID     string `json:"user_id"`
	Permission string `json:"permission"`
}

// PermissionView is an ACL entry joined with the user directory
type PermissionView struct {
	UserID     string             `json:"user_id"`
	UserName   string             `json:"user_name"`
	Known      bool               `json:"known"`
	Permission catalog.Permission `json:"permission"`
}
