package bolt

import (
	"encoding/json"
	"time"

	"github.com/boltdb/bolt"

	"github.com/tdelacour/semesterbuddy"
)

// UserStore persists users keyed by their sequence id. Email lookup scans
// the bucket: no uniqueness is enforced on emails, the first match wins.
type UserStore struct {
	Driver *Driver
}

func (s *UserStore) Get(id int) (*semesterbuddy.User, error) {
	var user *semesterbuddy.User
	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}

		user = &semesterbuddy.User{}
		return json.Unmarshal(data, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) Search(email string) (*semesterbuddy.User, error) {
	var user *semesterbuddy.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var u semesterbuddy.User
			if err := json.Unmarshal(data, &u); err != nil {
				return err
			}

			if u.Email == email {
				user = &u
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserStore) Upsert(user *semesterbuddy.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(userBucket)

		if user.ID <= 0 {
			id, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			user.ID = int(id)
			if user.CreatedAt.IsZero() {
				now := time.Now()
				user.CreatedAt = now
				user.UpdatedAt = now
			}
		}

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		return bucket.Put(itob(user.ID), data)
	})
}

func (s *UserStore) List() ([]*semesterbuddy.User, error) {
	var users []*semesterbuddy.User

	err := s.Driver.store.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(userBucket).Cursor()

		for id, data := c.First(); id != nil; id, data = c.Next() {
			var user semesterbuddy.User
			if err := json.Unmarshal(data, &user); err != nil {
				return err
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
