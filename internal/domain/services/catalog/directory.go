package catalog

import (
	"docvault/internal/domain/models/catalog"
)

// UserDirectory is the injected read-only collaborator the ACL service
// joins against. Implementations may change between calls (a reloaded
// file, an external service); the catalog must cope with any of them.
type UserDirectory interface {
	// Lookup resolves a user id. The second return reports whether the
	// directory knows the user.
	Lookup(userID string) (catalog.User, bool)

	// Users returns all known users
	Users() []catalog.User
}
