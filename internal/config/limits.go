package config

const (
	// MaxFolderNameLength is the maximum length for folder names.
	// Names should be short and descriptive; anything longer breaks
	// the folder listing layout.
	MaxFolderNameLength = 255

	// MaxTitleLength is the maximum length for document titles.
	// Same as folder names for consistency.
	MaxTitleLength = 255
)

// DefaultAllowedTypes is the upload allow-list when none is configured.
var DefaultAllowedTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
}

// DefaultMaxUploadMB is the upload size cap in MiB when none is
// configured.
const DefaultMaxUploadMB = 10
