package bolt

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/tdelacour/semesterbuddy"
)

// AssignmentStore backs the assignment collection. No route serves it in
// this revision; the clients keep assignments locally. The store exists so
// the gateway covers every declared collection.
type AssignmentStore struct {
	Driver *Driver
}

func (s *AssignmentStore) Create(assignment *semesterbuddy.Assignment) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(assignmentBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		assignment.ID = int(id)

		if assignment.Status == "" {
			assignment.Status = semesterbuddy.StatusPending
		}

		now := time.Now()
		assignment.CreatedAt = now
		assignment.UpdatedAt = now

		data, err := json.Marshal(assignment)
		if err != nil {
			return err
		}

		return bucket.Put(itob(assignment.ID), data)
	})
}

func (s *AssignmentStore) ListByOwner(userID int) ([]*semesterbuddy.Assignment, error) {
	var assignments []*semesterbuddy.Assignment

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(assignmentBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var assignment semesterbuddy.Assignment
			if err := json.Unmarshal(data, &assignment); err != nil {
				return err
			}

			if assignment.UserID == userID {
				assignments = append(assignments, &assignment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].CreatedAt.After(assignments[j].CreatedAt)
	})

	return assignments, nil
}

func (s *AssignmentStore) Get(id int) (*semesterbuddy.Assignment, error) {
	var assignment *semesterbuddy.Assignment
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(assignmentBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		assignment = &semesterbuddy.Assignment{}
		return json.Unmarshal(data, assignment)
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *AssignmentStore) Update(id int, u semesterbuddy.AssignmentUpdate) (bool, error) {
	updated := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(assignmentBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var assignment semesterbuddy.Assignment
		if err := json.Unmarshal(data, &assignment); err != nil {
			return err
		}

		if u.Title != nil {
			assignment.Title = *u.Title
		}
		if u.Description != nil {
			assignment.Description = *u.Description
		}
		if u.DueDate != nil {
			assignment.DueDate = *u.DueDate
		}
		if u.Status != nil {
			assignment.Status = *u.Status
		}
		if u.Priority != nil {
			assignment.Priority = *u.Priority
		}
		assignment.UpdatedAt = time.Now()

		data, err := json.Marshal(assignment)
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

func (s *AssignmentStore) Delete(id int) (bool, error) {
	deleted := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(assignmentBucket)

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
