package client

import (
	"context"
	"time"
)

type LectureAttachment struct {
	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

type Lecture struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date,omitempty"`
	Notes       string              `json:"notes"`
	Attachments []LectureAttachment `json:"attachments"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type LectureParams struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Date        *time.Time          `json:"date,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Attachments []LectureAttachment `json:"attachments,omitempty"`
}

func (c *Client) Lectures(ctx context.Context) ([]Lecture, error) {
	var lectures []Lecture
	if err := c.do(ctx, "GET", "/lecturenotes", nil, 200, &lectures); err != nil {
		return nil, err
	}

	return lectures, nil
}

func (c *Client) CreateLecture(ctx context.Context, params LectureParams) (Lecture, error) {
	var lecture Lecture
	if err := c.doJSON(ctx, "POST", "/lecturenotes", params, 201, &lecture); err != nil {
		return Lecture{}, err
	}

	return lecture, nil
}
