package files

import (
	"time"
)

// File is the metadata stored next to an uploaded blob.
type File struct {
	ID           string    `json:"id"`
	Name         string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	OwnerID      int       `json:"userId"`
	UploadedAt   time.Time `json:"uploadDate"`

	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Stored describes where an upload ended up. Ref is the attachment
// reference recorded on resources: a blob id in bucket mode, a relative
// public path in disk mode.
type Stored struct {
	Ref          string
	Name         string
	OriginalName string
	ContentType  string
	Size         int64
}

type UploadOptions struct {
	Description string
	Tags        []string
}

// Store is the attachment capability the resource endpoints rely on.
// Exactly one implementation is active per deployment, selected by
// configuration. Delete is idempotent in both implementations: deleting a
// reference whose backing blob or file is gone is a no-op, so a dangling
// database reference never blocks row deletion.
type Store interface {
	Upload(data []byte, name, contentType string, ownerID int, opts UploadOptions) (Stored, error)
	Delete(ref string) error
}

// BlobStore is the bucket-mode store. Only this mode can serve the generic
// /files/:id download and delete routes, which need per-blob metadata for
// the ownership check.
type BlobStore interface {
	Store

	Download(id string) ([]byte, *File, error)
	Metadata(id string) (*File, error)
	List(ownerID int) ([]*File, error)
}
