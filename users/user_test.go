package users

import (
	"testing"

	"github.com/tdelacour/semesterbuddy"
)

type inMemoryRepository struct {
	lastID int
	users  map[int]*semesterbuddy.User
}

func newInMemoryRepository() *inMemoryRepository {
	return &inMemoryRepository{users: make(map[int]*semesterbuddy.User)}
}

func (r *inMemoryRepository) Get(id int) (*semesterbuddy.User, error) {
	return r.users[id], nil
}

func (r *inMemoryRepository) Search(email string) (*semesterbuddy.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRepository) Upsert(user *semesterbuddy.User) error {
	if user.ID <= 0 {
		r.lastID++
		user.ID = r.lastID
	}
	saved := *user
	r.users[user.ID] = &saved
	return nil
}

func (r *inMemoryRepository) List() ([]*semesterbuddy.User, error) {
	users := make([]*semesterbuddy.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func TestResolver_Resolve(t *testing.T) {
	repository := newInMemoryRepository()
	resolver := NewResolver(repository)

	// An unknown email gets a user created
	user, err := resolver.Resolve("a@x.com")
	if err != nil {
		t.Fatal("error resolving:", err)
	}
	if user.ID <= 0 {
		t.Fatal("resolving should have created the user")
	}
	if user.Email != "a@x.com" {
		t.Fatalf("incorrect email: got %s", user.Email)
	}
	if user.CreatedAt.IsZero() || !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Error("a new user should carry matching timestamps")
	}

	// The same email resolves to the same user afterwards
	again, err := resolver.Resolve("a@x.com")
	if err != nil {
		t.Fatal("error resolving:", err)
	}
	if again.ID != user.ID {
		t.Errorf("incorrect user: expected id %d got %d", user.ID, again.ID)
	}
	if all, _ := repository.List(); len(all) != 1 {
		t.Errorf("resolving twice should not create a second row: %d rows", len(all))
	}

	// Different emails are different users
	other, err := resolver.Resolve("b@x.com")
	if err != nil {
		t.Fatal("error resolving:", err)
	}
	if other.ID == user.ID {
		t.Error("distinct emails should resolve to distinct users")
	}
}
