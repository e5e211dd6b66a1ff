package gin

import (
	"testing"
)

func TestLectureHandler_CreateAndList(t *testing.T) {
	router, f := createApp(t, diskStore)
	defer f()

	alice := token(t, "a@x.com")

	resp, r := do(t, router, "POST", "/lecturenotes", alice, createReader(map[string]interface{}{
		"title":       "Thermodynamics",
		"description": "week 4",
		"date":        "2026-03-02T10:00:00Z",
		"notes":       "entropy",
		"attachments": []map[string]interface{}{
			{"filePath": "/uploads/1--slides.pdf", "fileName": "slides.pdf", "fileSize": 1024},
			{"filePath": "/uploads/2--board.jpg", "fileName": "board.jpg", "fileSize": 2048},
		},
	}, t))
	if resp.Code != 201 {
		t.Fatalf("incorrect code: expected 201 got %d (%s)", resp.Code, resp.Body.String())
	}
	if r["date"] != "2026-03-02T10:00:00Z" {
		t.Errorf("incorrect date: got %v", r["date"])
	}

	attachments, ok := r["attachments"].([]interface{})
	if !ok || len(attachments) != 2 {
		t.Fatalf("incorrect attachments: %v", r["attachments"])
	}
	// Upload order is preserved
	first := attachments[0].(map[string]interface{})
	if first["fileName"] != "slides.pdf" {
		t.Errorf("incorrect first attachment: %v", first)
	}

	// A lecture without attachments still answers with an empty list, not
	// null
	resp, r = do(t, router, "POST", "/lecturenotes", alice, createReader(map[string]interface{}{
		"title": "Kinetics",
	}, t))
	if resp.Code != 201 {
		t.Fatalf("incorrect code: expected 201 got %d (%s)", resp.Code, resp.Body.String())
	}
	if _, ok := r["attachments"].([]interface{}); !ok {
		t.Errorf("attachments should be an empty list: %v", r["attachments"])
	}
	if _, ok := r["date"]; ok {
		t.Errorf("absent date should not be rendered: %v", r["date"])
	}

	resp, list := doList(t, router, "/lecturenotes", alice)
	if resp.Code != 200 {
		t.Fatalf("incorrect code: expected 200 got %d", resp.Code)
	}
	if len(list) != 2 {
		t.Errorf("incorrect number of lectures: %d", len(list))
	}
}
