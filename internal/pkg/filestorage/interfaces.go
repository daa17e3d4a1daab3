package filestorage

import "mime/multipart"

// Kind classifies an upload by payload type. Each kind has its own
// subdirectory and extension whitelist.
type Kind string

const (
	KindVideo Kind = "video"
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// FileStorage defines the interface for durable file storage operations.
// Save returns a relative path that callers resolve against the configured
// asset base URL.
type FileStorage interface {
	// Save stores an uploaded file under the given kind and returns its
	// referenceable path
	Save(fileHeader *multipart.FileHeader, kind Kind) (string, error)

	// Delete removes a stored file; deleting a missing file is not an error
	Delete(filePath string) error
}
