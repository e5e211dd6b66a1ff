package files

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Disk is the local-path attachment store. Uploads land in an uploads
// directory under the public root, under a timestamp-prefixed name so that
// re-uploading the same original filename never collides. The recorded
// reference is the public path, e.g. /uploads/169…--slides.pdf.
type Disk struct {
	// Root is the project root. PublicRoot is the statically served
	// directory under it, typically "public".
	Root       string
	PublicRoot string
}

func NewDisk(root string) *Disk {
	return &Disk{
		Root:       root,
		PublicRoot: filepath.Join(root, "public"),
	}
}

func (d *Disk) uploadDir() string {
	return filepath.Join(d.PublicRoot, "uploads")
}

func (d *Disk) Upload(data []byte, name, contentType string, ownerID int, opts UploadOptions) (Stored, error) {
	dir := d.uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Stored{}, err
	}

	stored := fmt.Sprintf("%d--%s", time.Now().UnixNano(), filepath.Base(name))
	if err := ioutil.WriteFile(filepath.Join(dir, stored), data, 0644); err != nil {
		return Stored{}, err
	}

	return Stored{
		Ref:          path.Join("/uploads", stored),
		Name:         stored,
		OriginalName: name,
		ContentType:  contentType,
		Size:         int64(len(data)),
	}, nil
}

// Delete resolves ref against the layouts successive schema revisions
// used for relative paths: under the public root, under the project root,
// and finally as a bare name in the uploads directory. The first candidate
// present on disk is removed. A reference matching nothing is a no-op so a
// dangling database reference never blocks row deletion.
func (d *Disk) Delete(ref string) error {
	if ref == "" {
		return nil
	}

	rel := filepath.FromSlash(ref)
	candidates := []string{
		filepath.Join(d.PublicRoot, rel),
		filepath.Join(d.Root, rel),
		filepath.Join(d.uploadDir(), filepath.Base(rel)),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return os.Remove(candidate)
		}
	}

	return nil
}
