package bolt

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"github.com/tdelacour/semesterbuddy/files"
)

// FileStore is the bucket-mode attachment store: blob bytes and their
// metadata live in two bolt buckets keyed by a generated identifier and
// are written in a single transaction, so a failed upload leaves no
// readable blob behind.
type FileStore struct {
	Driver *Driver
}

func (s *FileStore) Upload(data []byte, name, contentType string, ownerID int, opts files.UploadOptions) (files.Stored, error) {
	id := uuid.NewString()

	meta := files.File{
		ID:           id,
		Name:         name,
		OriginalName: name,
		ContentType:  contentType,
		Size:         int64(len(data)),
		OwnerID:      ownerID,
		UploadedAt:   time.Now(),
		Description:  opts.Description,
		Tags:         opts.Tags,
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		encoded, err := json.Marshal(meta)
		if err != nil {
			return err
		}

		if err := tx.Bucket(fileBucket).Put([]byte(id), encoded); err != nil {
			return err
		}
		return tx.Bucket(fileDataBucket).Put([]byte(id), data)
	})
	if err != nil {
		return files.Stored{}, err
	}

	return files.Stored{
		Ref:          id,
		Name:         name,
		OriginalName: name,
		ContentType:  contentType,
		Size:         meta.Size,
	}, nil
}

func (s *FileStore) Download(id string) ([]byte, *files.File, error) {
	var data []byte
	var meta *files.File

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket(fileBucket).Get([]byte(id))
		if encoded == nil {
			return nil
		}

		meta = &files.File{}
		if err := json.Unmarshal(encoded, meta); err != nil {
			return err
		}

		stored := tx.Bucket(fileDataBucket).Get([]byte(id))
		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return data, meta, nil
}

func (s *FileStore) Metadata(id string) (*files.File, error) {
	var meta *files.File

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		encoded := tx.Bucket(fileBucket).Get([]byte(id))
		if encoded == nil {
			return nil
		}

		meta = &files.File{}
		return json.Unmarshal(encoded, meta)
	})
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func (s *FileStore) List(ownerID int) ([]*files.File, error) {
	var list []*files.File

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(fileBucket).Cursor()

		for id, encoded := c.First(); id != nil; id, encoded = c.Next() {
			var meta files.File
			if err := json.Unmarshal(encoded, &meta); err != nil {
				return err
			}

			if meta.OwnerID == ownerID {
				list = append(list, &meta)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Delete removes the blob and its metadata. Unknown ids are a no-op.
func (s *FileStore) Delete(id string) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(fileBucket).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(fileDataBucket).Delete([]byte(id))
	})
}
