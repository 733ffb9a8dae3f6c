package catalog

// User is an entry in the external user directory. The directory is
// advisory: ACL entries may reference users the directory has never
// heard of.
type User struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
