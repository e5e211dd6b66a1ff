package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tdelacour/semesterbuddy/errors"
)

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is the Go surface of the content API. It plays the role the
// browser-side content service plays for the UI: thin typed wrappers
// around the server routes, one session token per client.
type Client struct {
	baseURL string
	token   string
	client  HTTPClient
}

func NewClient(token string, c HTTPClient, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		client:  c,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, expected int, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != expected {
		var callErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&callErr); err != nil || callErr.Error == "" {
			return errors.New(fmt.Sprintf("error in call: status %d", res.StatusCode), errors.WithCode(res.StatusCode))
		}

		return errors.New(callErr.Error, errors.WithCode(res.StatusCode))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, expected int, out interface{}) error {
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return err
	}

	return c.do(ctx, method, path, body, expected, out)
}
