package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/tdelacour/semesterbuddy/errors"
)

// Uploaded is the server's description of a stored attachment. FileID is
// set in bucket mode, PublicPath in disk mode.
type Uploaded struct {
	OriginalName string `json:"originalname"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
	FileID       string `json:"fileId"`
	PublicPath   string `json:"publicPath"`
}

// Ref returns the attachment reference to record on the owning resource.
func (u Uploaded) Ref() string {
	if u.FileID != "" {
		return u.FileID
	}
	return u.PublicPath
}

func (c *Client) Upload(ctx context.Context, filename string, data []byte, description string, tags []string) (Uploaded, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Uploaded{}, err
	}
	if _, err := part.Write(data); err != nil {
		return Uploaded{}, err
	}
	if description != "" {
		if err := writer.WriteField("description", description); err != nil {
			return Uploaded{}, err
		}
	}
	if len(tags) > 0 {
		if err := writer.WriteField("tags", strings.Join(tags, ",")); err != nil {
			return Uploaded{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return Uploaded{}, err
	}

	req, err := http.NewRequest("POST", c.baseURL+"/files/upload", body)
	if err != nil {
		return Uploaded{}, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return Uploaded{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return Uploaded{}, errors.New(fmt.Sprintf("error in call: status %d", res.StatusCode), errors.WithCode(res.StatusCode))
	}

	var r struct {
		File Uploaded `json:"file"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return Uploaded{}, err
	}

	return r.File, nil
}

func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/files/%s", id), nil, 200, nil)
}
