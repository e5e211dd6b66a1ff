package client

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// Note is the wire shape of a note: ids are strings, dates RFC 3339.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	FileID    string    `json:"fileId,omitempty"`
	FilePath  string    `json:"filePath,omitempty"`
	FileName  string    `json:"fileName,omitempty"`
	FileSize  int64     `json:"fileSize,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteParams struct {
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	Type     string `json:"type,omitempty"`
	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`
}

// NoteUpdate only sends the fields that are set; the server leaves the
// rest untouched.
type NoteUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Type     *string `json:"type,omitempty"`
	FileID   *string `json:"fileId,omitempty"`
	FilePath *string `json:"filePath,omitempty"`
	FileName *string `json:"fileName,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`
}

func (c *Client) Notes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, "GET", "/notes", nil, 200, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, params NoteParams) (Note, error) {
	var note Note
	if err := c.doJSON(ctx, "POST", "/notes", params, 201, &note); err != nil {
		return Note{}, err
	}

	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, update NoteUpdate) (Note, error) {
	var note Note
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/notes/%s", id), update, 200, &note); err != nil {
		return Note{}, err
	}

	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/notes/%s", id), nil, 200, nil)
}

func (c *Client) SearchNotes(ctx context.Context, q string) ([]Note, error) {
	var notes []Note
	path := fmt.Sprintf("/notes/search?q=%s", url.QueryEscape(q))
	if err := c.do(ctx, "GET", path, nil, 200, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}
