package catalog

import "fmt"

// Permission is the access level a user holds on a single document.
type Permission string

const (
	PermissionView     Permission = "view"
	PermissionEdit     Permission = "edit"
	PermissionDownload Permission = "download"
)

// ParsePermission validates a raw permission string.
func ParsePermission(raw string) (Permission, error) {
	switch Permission(raw) {
	case PermissionView, PermissionEdit, PermissionDownload:
		return Permission(raw), nil
	default:
		return "", fmt.Errorf("unknown permission %q", raw)
	}
}

// ACLEntry grants one permission level to one user. A document's ACL
// holds at most one entry per user.
type ACLEntry struct {
	UserID     string     `json:"user_id"`
	Permission Permission `json:"permission"`
}
