package gin

import (
	"testing"
)

func TestNotebookHandler_Lifecycle(t *testing.T) {
	router, f := createApp(t, diskStore)
	defer f()

	alice := token(t, "a@x.com")
	bob := token(t, "b@x.com")

	resp, r := do(t, router, "POST", "/notebooks", alice, createReader(map[string]interface{}{
		"title":       "Physics",
		"description": "second semester",
	}, t))
	if resp.Code != 201 {
		t.Fatalf("incorrect code: expected 201 got %d (%s)", resp.Code, resp.Body.String())
	}
	if r["title"] != "Physics" || r["description"] != "second semester" {
		t.Errorf("incorrect notebook: %v", r)
	}
	notebookID := r["id"].(string)

	// Update only touches the fields sent
	resp, r = do(t, router, "PUT", "/notebooks/"+notebookID, alice, createReader(map[string]interface{}{
		"description": "third semester",
	}, t))
	if resp.Code != 200 {
		t.Fatalf("incorrect code: expected 200 got %d (%s)", resp.Code, resp.Body.String())
	}
	if r["title"] != "Physics" || r["description"] != "third semester" {
		t.Errorf("incorrect notebook after update: %v", r)
	}

	// Ownership is masked as absence
	resp, r = do(t, router, "PUT", "/notebooks/"+notebookID, bob, createReader(map[string]interface{}{
		"title": "Mine now",
	}, t))
	if resp.Code != 404 {
		t.Fatalf("incorrect code: expected 404 got %d", resp.Code)
	}
	if r["error"] != "Notebook not found" {
		t.Errorf("incorrect error: got %v", r["error"])
	}

	resp, r = do(t, router, "DELETE", "/notebooks/"+notebookID, bob, nil)
	if resp.Code != 404 {
		t.Fatalf("incorrect code: expected 404 got %d", resp.Code)
	}

	resp, r = do(t, router, "DELETE", "/notebooks/"+notebookID, alice, nil)
	if resp.Code != 200 {
		t.Fatalf("incorrect code: expected 200 got %d (%s)", resp.Code, resp.Body.String())
	}
	if r["message"] != "Notebook deleted successfully" {
		t.Errorf("incorrect message: got %v", r["message"])
	}

	resp, list := doList(t, router, "/notebooks", alice)
	if resp.Code != 200 || len(list) != 0 {
		t.Errorf("notebook should be gone: code %d, list %v", resp.Code, list)
	}
}
