package bolt

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/boltdb/bolt"
)

var (
	userBucket       = []byte("users")
	noteBucket       = []byte("notes")
	notebookBucket   = []byte("notebooks")
	lectureBucket    = []byte("lectures")
	assignmentBucket = []byte("assignments")
	fileBucket       = []byte("files")
	fileDataBucket   = []byte("files_data")
)

// Driver owns the connection to the bolt database. It is constructed once
// at startup, injected into the stores, and closed on shutdown.
type Driver struct {
	store *bolt.DB
}

// Open opens the connection to the bolt database defined by path and
// creates the buckets the stores rely on.
func (d *Driver) Open(path string) error {
	if d.store != nil {
		return errors.New("store already open")
	}

	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return err
	}

	err = store.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			userBucket,
			noteBucket,
			notebookBucket,
			lectureBucket,
			assignmentBucket,
			fileBucket,
			fileDataBucket,
		}
		for _, bucket := range buckets {
			_, err := tx.CreateBucketIfNotExists(bucket)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		store.Close()
		return err
	}

	d.store = store
	return nil
}

// Close closes the underlying database.
func (d *Driver) Close() error {
	if d.store != nil {
		err := d.store.Close()
		d.store = nil
		return err
	}
	return nil
}

// Ping verifies the database answers. Used by the connectivity probe.
func (d *Driver) Ping() error {
	if d.store == nil {
		return errors.New("store not open")
	}

	return d.store.View(func(tx *bolt.Tx) error {
		if tx.Bucket(userBucket) == nil {
			return errors.New("users bucket missing")
		}
		return nil
	})
}

// DB exposes the raw handle for the stores sharing this driver.
func (d *Driver) DB() *bolt.DB { return d.store }

// itob returns an 8-byte big endian representation of v.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
