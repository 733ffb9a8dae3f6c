// Package directory provides user directory implementations. The
// directory is an advisory collaborator: the catalog joins ACL entries
// against it but never depends on it for correctness.
package directory

import (
	"docvault/internal/domain/models/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

// StaticDirectory serves a fixed user list. Used in tests and as the
// fallback when no users file is configured.
type StaticDirectory struct {
	users []catalog.User
	byID  map[string]catalog.User
}

// NewStatic creates a directory over a fixed user list
func NewStatic(users []catalog.User) *StaticDirectory {
	byID := make(map[string]catalog.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return &StaticDirectory{users: users, byID: byID}
}

// Default returns the built-in demo directory
func Default() *StaticDirectory {
	return NewStatic([]catalog.User{
		{ID: "alice", Name: "alice"},
		{ID: "bob", Name: "bob"},
		{ID: "john", Name: "john"},
	})
}

// Lookup resolves a user id
func (d *StaticDirectory) Lookup(userID string) (catalog.User, bool) {
	u, ok := d.byID[userID]
	return u, ok
}

// Users returns all known users
func (d *StaticDirectory) Users() []catalog.User {
	out := make([]catalog.User, len(d.users))
	copy(out, d.users)
	return out
}

var _ catalogSvc.UserDirectory = (*StaticDirectory)(nil)
