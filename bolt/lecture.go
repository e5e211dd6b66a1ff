package bolt

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/boltdb/bolt"

	"github.com/tdelacour/semesterbuddy"
)

type LectureStore struct {
	Driver *Driver
}

func (s *LectureStore) Create(lecture *semesterbuddy.Lecture) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(lectureBucket)

		id, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		lecture.ID = int(id)

		if lecture.Attachments == nil {
			lecture.Attachments = []semesterbuddy.LectureAttachment{}
		}

		now := time.Now()
		lecture.CreatedAt = now
		lecture.UpdatedAt = now

		data, err := json.Marshal(lecture)
		if err != nil {
			return err
		}

		return bucket.Put(itob(lecture.ID), data)
	})
}

func (s *LectureStore) ListByOwner(userID int) ([]*semesterbuddy.Lecture, error) {
	var lectures []*semesterbuddy.Lecture

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(lectureBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var lecture semesterbuddy.Lecture
			if err := json.Unmarshal(data, &lecture); err != nil {
				return err
			}

			if lecture.UserID == userID {
				lectures = append(lectures, &lecture)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(lectures, func(i, j int) bool {
		return lectures[i].CreatedAt.After(lectures[j].CreatedAt)
	})

	return lectures, nil
}

func (s *LectureStore) Get(id int) (*semesterbuddy.Lecture, error) {
	var lecture *semesterbuddy.Lecture
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(lectureBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		lecture = &semesterbuddy.Lecture{}
		return json.Unmarshal(data, lecture)
	})
	if err != nil {
		return nil, err
	}

	return lecture, nil
}

func (s *LectureStore) Update(id int, u semesterbuddy.LectureUpdate) (bool, error) {
	updated := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(lectureBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		var lecture semesterbuddy.Lecture
		if err := json.Unmarshal(data, &lecture); err != nil {
			return err
		}

		if u.Title != nil {
			lecture.Title = *u.Title
		}
		if u.Description != nil {
			lecture.Description = *u.Description
		}
		if u.Date != nil {
			lecture.Date = *u.Date
		}
		if u.Notes != nil {
			lecture.Notes = *u.Notes
		}
		if u.Attachments != nil {
			lecture.Attachments = *u.Attachments
		}
		lecture.UpdatedAt = time.Now()

		data, err := json.Marshal(lecture)
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

func (s *LectureStore) Delete(id int) (bool, error) {
	deleted := false
	err := s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(lectureBucket)

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
