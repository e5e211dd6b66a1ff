package endpoints

import (
	"context"

	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/files"
	"github.com/tdelacour/semesterbuddy/files/services"
	"github.com/tdelacour/semesterbuddy/users"
)

var errInvalidRequest = errors.New("invalid request")

type FileEndpoint struct {
	service *services.FileService
}

func NewFileEndpoint(service *services.FileService) *FileEndpoint {
	return &FileEndpoint{
		service: service,
	}
}

type UploadRequest struct {
	Data        []byte
	Name        string
	ContentType string
	Description string
	Tags        []string
}

func (ep *FileEndpoint) Upload(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	req, ok := r.(UploadRequest)
	if !ok {
		return nil, errInvalidRequest
	}

	stored, err := ep.service.Upload(user, req.Data, req.Name, req.ContentType, files.UploadOptions{
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}

	file := map[string]interface{}{
		"originalname": stored.OriginalName,
		"filename":     stored.Name,
		"mimetype":     stored.ContentType,
		"size":         stored.Size,
	}
	if ep.service.BucketMode() {
		file["fileId"] = stored.Ref
	} else {
		file["publicPath"] = stored.Ref
	}

	return map[string]interface{}{
		"file": file,
	}, nil
}

// DownloadResponse carries the raw bytes; the transport layer turns it
// into a file response instead of JSON.
type DownloadResponse struct {
	Data []byte
	Meta *files.File
}

func (ep *FileEndpoint) Download(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	data, meta, err := ep.service.Download(user, id)
	if err != nil {
		return nil, err
	}

	return DownloadResponse{Data: data, Meta: meta}, nil
}

func (ep *FileEndpoint) Delete(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	id, ok := r.(string)
	if !ok {
		return nil, errInvalidRequest
	}

	if err := ep.service.Delete(user, id); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"success": true,
		"message": "File deleted successfully",
	}, nil
}

func (ep *FileEndpoint) List(ctx context.Context, r interface{}) (interface{}, error) {
	user, err := users.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := ep.service.List(user)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"files": list,
	}, nil
}
