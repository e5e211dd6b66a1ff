package bolt

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/tdelacour/semesterbuddy"
)

func createDriver(t *testing.T) (*Driver, func()) {
	tmpFile, err := ioutil.TempFile("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	driver := Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatal("could not open driver:", err)
	}

	return &driver, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestNoteStore_Create(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := NoteStore{Driver: driver}

	note := semesterbuddy.Note{UserID: 1, Title: "Midterm", Content: "review", Type: "text"}
	if err := store.Create(&note); err != nil {
		t.Fatal("error creating:", err)
	}
	if note.ID <= 0 {
		t.Fatal("creating should have set the id")
	}
	if note.CreatedAt.IsZero() {
		t.Fatal("creating should have set created at")
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Fatal("created at and updated at should be equal at creation")
	}

	retrieved, err := store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if retrieved == nil {
		t.Fatal("note should have been found")
	}
	if retrieved.Title != note.Title || retrieved.UserID != note.UserID {
		t.Fatalf("incorrect note retrieved: expected %+v got %+v", note, *retrieved)
	}
}

func TestNoteStore_Get_Absent(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := NoteStore{Driver: driver}

	note, err := store.Get(42)
	if err != nil {
		t.Fatal("absent id should not error:", err)
	}
	if note != nil {
		t.Fatal("absent id should yield nil")
	}
}

func TestNoteStore_ListByOwner(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := NoteStore{Driver: driver}

	for i, tt := range []struct {
		userID int
		title  string
	}{
		{1, "first"},
		{1, "second"},
		{2, "other user"},
	} {
		note := semesterbuddy.Note{UserID: tt.userID, Title: tt.title, Type: "text"}
		if err := store.Create(&note); err != nil {
			t.Fatalf("%d - error creating: %v", i, err)
		}
		// keep createdAt strictly increasing
		time.Sleep(2 * time.Millisecond)
	}

	notes, err := store.ListByOwner(1)
	if err != nil {
		t.Fatal("error listing:", err)
	}
	if len(notes) != 2 {
		t.Fatalf("incorrect number of notes: expected 2 got %d", len(notes))
	}
	// newest first
	if notes[0].Title != "second" || notes[1].Title != "first" {
		t.Fatalf("incorrect order: got %s then %s", notes[0].Title, notes[1].Title)
	}

	notes, err = store.ListByOwner(3)
	if err != nil {
		t.Fatal("error listing:", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes for unknown owner, got %d", len(notes))
	}
}

func TestNoteStore_Update(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := NoteStore{Driver: driver}

	note := semesterbuddy.Note{UserID: 1, Title: "Midterm", Content: "review", Type: "text"}
	if err := store.Create(&note); err != nil {
		t.Fatal("error creating:", err)
	}

	time.Sleep(2 * time.Millisecond)

	title := "Final"
	ok, err := store.Update(note.ID, semesterbuddy.NoteUpdate{Title: &title})
	if err != nil {
		t.Fatal("error updating:", err)
	}
	if !ok {
		t.Fatal("update should have reported success")
	}

	updated, err := store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if updated.Title != "Final" {
		t.Fatalf("title not updated: got %s", updated.Title)
	}
	if updated.Content != "review" {
		t.Fatal("unspecified fields should remain unchanged")
	}
	if !updated.UpdatedAt.After(note.UpdatedAt) {
		t.Fatal("update should refresh updated at")
	}
	if !updated.CreatedAt.Equal(note.CreatedAt) {
		t.Fatal("update should not touch created at")
	}

	// missing row fails soft
	ok, err = store.Update(note.ID+1, semesterbuddy.NoteUpdate{Title: &title})
	if err != nil {
		t.Fatal("missing row should not error:", err)
	}
	if ok {
		t.Fatal("missing row should report false")
	}
}

func TestNoteStore_Delete(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := NoteStore{Driver: driver}

	note := semesterbuddy.Note{UserID: 1, Title: "Midterm", Type: "text"}
	if err := store.Create(&note); err != nil {
		t.Fatal("error creating:", err)
	}

	ok, err := store.Delete(note.ID)
	if err != nil {
		t.Fatal("error deleting:", err)
	}
	if !ok {
		t.Fatal("delete should have reported success")
	}

	retrieved, err := store.Get(note.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if retrieved != nil {
		t.Fatal("note should be gone")
	}

	ok, err = store.Delete(note.ID)
	if err != nil {
		t.Fatal("second delete should not error:", err)
	}
	if ok {
		t.Fatal("second delete should report false")
	}
}
