package bolt

import (
	"testing"

	"github.com/tdelacour/semesterbuddy"
)

func TestUserStore_Upsert_Search(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := UserStore{Driver: driver}

	user := semesterbuddy.User{Email: "a@x.com"}
	if err := store.Upsert(&user); err != nil {
		t.Fatal("error upserting:", err)
	}
	if user.ID <= 0 {
		t.Fatal("upserting should have set the id")
	}
	if user.CreatedAt.IsZero() || !user.CreatedAt.Equal(user.UpdatedAt) {
		t.Fatal("upserting a new user should set both timestamps to the same instant")
	}

	found, err := store.Search("a@x.com")
	if err != nil {
		t.Fatal("error searching:", err)
	}
	if found == nil {
		t.Fatal("user should have been found by email")
	}
	if found.ID != user.ID {
		t.Fatalf("incorrect user: expected id %d got %d", user.ID, found.ID)
	}

	found, err = store.Search("b@x.com")
	if err != nil {
		t.Fatal("error searching:", err)
	}
	if found != nil {
		t.Fatal("unknown email should yield nil")
	}
}

func TestUserStore_Get(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := UserStore{Driver: driver}

	user := semesterbuddy.User{Email: "a@x.com", DisplayName: "A"}
	if err := store.Upsert(&user); err != nil {
		t.Fatal("error upserting:", err)
	}

	retrieved, err := store.Get(user.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if retrieved == nil || retrieved.Email != "a@x.com" || retrieved.DisplayName != "A" {
		t.Fatalf("incorrect user retrieved: %+v", retrieved)
	}

	retrieved, err = store.Get(user.ID + 1)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if retrieved != nil {
		t.Fatal("unknown id should yield nil")
	}
}
