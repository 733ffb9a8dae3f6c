package catalog

import (
	"time"
)

type Folder struct {
	ID        string    `json:"id"`
	ParentID  *string   `json:"parent_id"` // nil = root level
	Name      string    `json:"name"`
	Path      string    `json:"path,omitempty"` // Computed display path, not stored
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
