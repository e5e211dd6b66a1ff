package bolt

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/tdelacour/semesterbuddy"
)

type NotebookStore struct {
	Driver *Driver
}

func (s *NotebookStore) Create(notebook *semesterbuddy.Notebook) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(notebookBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		notebook.ID = int(id)

		now := time.Now()
		notebook.CreatedAt = now
		notebook.UpdatedAt = now

		data, err := json.Marshal(notebook)
		if err != nil {
			return err
		}

		return bucket.Put(itob(notebook.ID), data)
	})
}

func (s *NotebookStore) ListByOwner(userID int) ([]*semesterbuddy.Notebook, error) {
	var notebooks []*semesterbuddy.Notebook

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(notebookBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var notebook semesterbuddy.Notebook
			if err := json.Unmarshal(data, &notebook); err != nil {
				return err
			}

			if notebook.UserID == userID {
				notebooks = append(notebooks, &notebook)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notebooks, func(i, j int) bool {
		return notebooks[i].CreatedAt.After(notebooks[j].CreatedAt)
	})

	return notebooks, nil
}

func (s *NotebookStore) Get(id int) (*semesterbuddy.Notebook, error) {
	var notebook *semesterbuddy.Notebook
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(notebookBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		notebook = &semesterbuddy.Notebook{}
		return json.Unmarshal(data, notebook)
	})
	if err != nil {
		return nil, err
	}

	return notebook, nil
}

func (s *NotebookStore) Update(id int, u semesterbuddy.NotebookUpdate) (bool, error) {
	updated := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(notebookBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var notebook semesterbuddy.Notebook
		if err := json.Unmarshal(data, &notebook); err != nil {
			return err
		}

		if u.Title != nil {
			notebook.Title = *u.Title
		}
		if u.Description != nil {
			notebook.Description = *u.Description
		}
		notebook.UpdatedAt = time.Now()

		data, err := json.Marshal(notebook)
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

func (s *NotebookStore) Delete(id int) (bool, error) {
	deleted := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(notebookBucket)

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
