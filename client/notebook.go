package client

import (
	"context"
	"fmt"
	"time"
)

type Notebook struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FileID      string    `json:"fileId,omitempty"`
	FilePath    string    `json:"filePath,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NotebookParams struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	FileID      string `json:"fileId,omitempty"`
	FilePath    string `json:"filePath,omitempty"`
}

type NotebookUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (c *Client) Notebooks(ctx context.Context) ([]Notebook, error) {
	var notebooks []Notebook
	if err := c.do(ctx, "GET", "/notebooks", nil, 200, &notebooks); err != nil {
		return nil, err
	}

	return notebooks, nil
}

func (c *Client) CreateNotebook(ctx context.Context, params NotebookParams) (Notebook, error) {
	var notebook Notebook
	if err := c.doJSON(ctx, "POST", "/notebooks", params, 201, &notebook); err != nil {
		return Notebook{}, err
	}

	return notebook, nil
}

func (c *Client) UpdateNotebook(ctx context.Context, id string, update NotebookUpdate) (Notebook, error) {
	var notebook Notebook
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/notebooks/%s", id), update, 200, &notebook); err != nil {
		return Notebook{}, err
	}

	return notebook, nil
}

func (c *Client) DeleteNotebook(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/notebooks/%s", id), nil, 200, nil)
}
