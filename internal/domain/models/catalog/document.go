package catalog

import (
	"time"
)

// FileRef is an opaque handle to uploaded content. The bytes themselves
// never reach the catalog; only the descriptor is kept.
type FileRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Metadata is the descriptive metadata attached to a document.
type Metadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	FolderID    *string  `json:"folder_id"` // nil = no folder
	Tags        []string `json:"tags"`
}

type Document struct {
	ID        string     `json:"id"`
	File      FileRef    `json:"file"`
	Metadata  Metadata   `json:"metadata"`
	ACL       []ACLEntry `json:"acl"`
	Path      string     `json:"path,omitempty"` // Computed folder display path, not stored
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Clone returns a deep copy of the document. Repositories hand out
// clones so callers can never mutate store state through a returned
// pointer; tag and ACL slices are copied, never shared.
func (d *Document) Clone() *Document {
	out := *d
	if d.Metadata.FolderID != nil {
		id := *d.Metadata.FolderID
		out.Metadata.FolderID = &id
	}
	out.Metadata.Tags = append([]string(nil), d.Metadata.Tags...)
	out.ACL = append([]ACLEntry(nil), d.ACL...)
	return &out
}
