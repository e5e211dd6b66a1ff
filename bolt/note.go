package bolt

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/tdelacour/semesterbuddy"
)

// NoteStore implements semesterbuddy.NoteStore over a bolt bucket. Absent
// rows are soft: Get returns nil, Update and Delete return false, none of
// them surface an error for a missing id.
type NoteStore struct {
	Driver *Driver
}

func (s *NoteStore) Create(note *semesterbuddy.Note) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		note.ID = int(id)

		now := time.Now()
		note.CreatedAt = now
		note.UpdatedAt = now

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		return bucket.Put(itob(note.ID), data)
	})
}

func (s *NoteStore) ListByOwner(userID int) ([]*semesterbuddy.Note, error) {
	var notes []*semesterbuddy.Note

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(noteBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var note semesterbuddy.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return err
			}

			if note.UserID == userID {
				notes = append(notes, &note)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Newest first
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

func (s *NoteStore) Get(id int) (*semesterbuddy.Note, error) {
	var note *semesterbuddy.Note
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(noteBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		note = &semesterbuddy.Note{}
		return json.Unmarshal(data, note)
	})
	if err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteStore) Update(id int, u semesterbuddy.NoteUpdate) (bool, error) {
	updated := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var note semesterbuddy.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return err
		}

		if u.Title != nil {
			note.Title = *u.Title
		}
		if u.Content != nil {
			note.Content = *u.Content
		}
		if u.Type != nil {
			note.Type = *u.Type
		}
		if u.FileID != nil {
			note.FileID = *u.FileID
		}
		if u.FilePath != nil {
			note.FilePath = *u.FilePath
		}
		if u.FileName != nil {
			note.FileName = *u.FileName
		}
		if u.FileSize != nil {
			note.FileSize = *u.FileSize
		}
		note.UpdatedAt = time.Now()

		data, err := json.Marshal(note)
		if err != nil {
			return err
		}

		if err := bucket.Put(itob(id), data); err != nil {
			return err
		}

		updated = true
		return nil
	})

	return updated, err
}

func (s *NoteStore) Delete(id int) (bool, error) {
	deleted := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(noteBucket)

		if bucket.Get(itob(id)) == nil {
			return nil
		}

		if err := bucket.Delete(itob(id)); err != nil {
			return err
		}

		deleted = true
		return nil
	})

	return deleted, err
}
