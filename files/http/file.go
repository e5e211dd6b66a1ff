package http

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/files/endpoints"
	"github.com/tdelacour/semesterbuddy/files/services"
	"github.com/tdelacour/semesterbuddy/jwt"
	"github.com/tdelacour/semesterbuddy/users"
)

const maxUploadBytes = 32 << 20

func RegisterFileEndpoints(srv Server, service *services.FileService, jwtKey []byte, authenticator *users.Authenticator) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewFileEndpoint(service)

	uploadHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Upload)),
		decodeUploadRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/files/upload", "POST", uploadHandler)

	// The id-addressed routes need per-blob metadata for the ownership
	// check; only the bucket store has it.
	if !service.BucketMode() {
		return
	}

	downloadHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Download)),
		decodeFileIDRequest,
		encodeDownloadResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.Delete)),
		decodeFileIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listHandler := kithttp.NewServer(
		jwtMiddleware(authenticator.Authenticated(ep.List)),
		decodeListRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/files/:id", "GET", downloadHandler)
	srv.RegisterHandler("/files/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/files", "GET", listHandler)
}

func decodeUploadRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, errors.New("No file uploaded", errors.BadRequest(), errors.WithCause(err))
	}

	// The historical upload variant used the form field "image".
	file, header, err := r.FormFile("file")
	if err != nil {
		file, header, err = r.FormFile("image")
	}
	if err != nil {
		return nil, errors.New("No file uploaded", errors.BadRequest())
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.New("Upload failed", errors.WithCause(err))
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	req := endpoints.UploadRequest{
		Data:        data,
		Name:        header.Filename,
		ContentType: contentType,
		Description: r.FormValue("description"),
	}
	if tags := r.FormValue("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	return req, nil
}

func decodeFileIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params, _ := ctx.Value("params").(map[string]string)
	id := params["id"]
	if id == "" {
		return nil, errors.New("File not found", errors.NotFound())
	}

	return id, nil
}

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func encodeDownloadResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	res, ok := response.(endpoints.DownloadResponse)
	if !ok {
		return errors.New("invalid response")
	}

	w.Header().Set("Content-Type", res.Meta.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Meta.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	_, err := w.Write(res.Data)
	return err
}
