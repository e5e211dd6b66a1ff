package services

import (
	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/files"
)

func errFileNotFound() error {
	return errors.New("File not found", errors.NotFound())
}

func errAccessDenied() error {
	return errors.New("Access denied", errors.Forbidden())
}

// FileService owns the attachment lifecycle. store is whichever mode the
// deployment selected; blobs is non-nil in bucket mode only, and the
// id-addressed operations exist only there.
type FileService struct {
	store files.Store
	blobs files.BlobStore
}

func NewFileService(store files.Store) *FileService {
	s := &FileService{store: store}
	if blobs, ok := store.(files.BlobStore); ok {
		s.blobs = blobs
	}
	return s
}

// BucketMode reports whether the id-addressed blob routes can be served.
func (s *FileService) BucketMode() bool { return s.blobs != nil }

// Store exposes the underlying store for the resource handlers doing
// best-effort attachment cleanup.
func (s *FileService) Store() files.Store { return s.store }

func (s *FileService) Upload(user semesterbuddy.User, data []byte, name, contentType string, opts files.UploadOptions) (files.Stored, error) {
	stored, err := s.store.Upload(data, name, contentType, user.ID, opts)
	if err != nil {
		return files.Stored{}, errors.New("Upload failed", errors.WithCause(err), errors.WithCode(500))
	}

	return stored, nil
}

// Download checks existence before ownership: an unknown id answers 404
// while a foreign one answers 403. The status codes therefore reveal
// whether an id exists. Kept as documented behavior.
func (s *FileService) Download(user semesterbuddy.User, id string) ([]byte, *files.File, error) {
	data, meta, err := s.blobs.Download(id)
	if err != nil {
		return nil, nil, errors.New("Failed to download file", errors.WithCause(err), errors.WithCode(500))
	}

	if meta == nil {
		return nil, nil, errFileNotFound()
	}
	if meta.OwnerID != user.ID {
		return nil, nil, errAccessDenied()
	}

	return data, meta, nil
}

func (s *FileService) Delete(user semesterbuddy.User, id string) error {
	meta, err := s.blobs.Metadata(id)
	if err != nil {
		return errors.New("Failed to delete file", errors.WithCause(err), errors.WithCode(500))
	}

	if meta == nil {
		return errFileNotFound()
	}
	if meta.OwnerID != user.ID {
		return errAccessDenied()
	}

	if err := s.blobs.Delete(id); err != nil {
		return errors.New("Failed to delete file", errors.WithCause(err), errors.WithCode(500))
	}

	return nil
}

func (s *FileService) List(user semesterbuddy.User) ([]*files.File, error) {
	list, err := s.blobs.List(user.ID)
	if err != nil {
		return nil, errors.New("Failed to list files", errors.WithCause(err), errors.WithCode(500))
	}

	if list == nil {
		list = []*files.File{}
	}
	return list, nil
}
