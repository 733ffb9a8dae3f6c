package catalog

import "time"

// TreeNode is the root of the nested folder/document projection served
// to the presentation layer.
type TreeNode struct {
	Folders   []*FolderTreeNode  `json:"folders"`
	Documents []DocumentTreeNode `json:"documents"`
}

// FolderTreeNode is a folder with its nested children.
type FolderTreeNode struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	ParentID  *string            `json:"parent_id"`
	CreatedAt time.Time          `json:"created_at"`
	Folders   []*FolderTreeNode  `json:"folders"`
	Documents []DocumentTreeNode `json:"documents"`
}

// DocumentTreeNode is the document metadata surfaced in the tree,
// without tags or ACL.
type DocumentTreeNode struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FolderID  *string   `json:"folder_id"`
	FileName  string    `json:"file_name"`
	UpdatedAt time.Time `json:"updated_at"`
}
