package bolt

import (
	"testing"

	"github.com/tdelacour/semesterbuddy"
)

func TestLectureStore_Create_Attachments(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := LectureStore{Driver: driver}

	lecture := semesterbuddy.Lecture{
		UserID: 1,
		Title:  "Algorithms, week 3",
		Attachments: []semesterbuddy.LectureAttachment{
			{FilePath: "/uploads/1--slides.pdf", FileName: "slides.pdf", FileSize: 1024},
			{FilePath: "/uploads/2--board.png", FileName: "board.png", FileSize: 2048},
		},
	}
	if err := store.Create(&lecture); err != nil {
		t.Fatal("error creating:", err)
	}

	retrieved, err := store.Get(lecture.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if len(retrieved.Attachments) != 2 {
		t.Fatalf("incorrect number of attachments: expected 2 got %d", len(retrieved.Attachments))
	}
	// order of upload is preserved
	if retrieved.Attachments[0].FileName != "slides.pdf" {
		t.Fatalf("attachment order lost: got %s first", retrieved.Attachments[0].FileName)
	}
}

func TestLectureStore_Create_NoAttachments(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	store := LectureStore{Driver: driver}

	lecture := semesterbuddy.Lecture{UserID: 1, Title: "Empty"}
	if err := store.Create(&lecture); err != nil {
		t.Fatal("error creating:", err)
	}

	retrieved, err := store.Get(lecture.ID)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	if retrieved.Attachments == nil {
		t.Fatal("attachments should marshal as an empty list, not null")
	}
}
