package gin

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/files"
	"github.com/tdelacour/semesterbuddy/log"
)

type NotebookHandler struct {
	Store         semesterbuddy.NotebookStore
	Files         files.Store
	Logger        log.Logger
	Authenticator *Authenticator
}

func (h *NotebookHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/notebooks", JSONFormatter(h.Authenticator.Authenticate(h.List)))
	router.POST("/notebooks", JSONFormatter(h.Authenticator.Authenticate(h.Create)))
	router.PUT("/notebooks/:id", JSONFormatter(h.Authenticator.Authenticate(h.Update)))
	router.DELETE("/notebooks/:id", JSONFormatter(h.Authenticator.Authenticate(h.Delete)))
}

func (h *NotebookHandler) List(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	notebooks, err := h.Store.ListByOwner(user.ID)
	if err != nil {
		return nil, errors.New("Failed to fetch notebooks", errors.WithCause(err))
	}

	formatted := make([]interface{}, len(notebooks))
	for i, notebook := range notebooks {
		formatted[i] = formatNotebook(notebook)
	}

	return formatted, nil
}

func (h *NotebookHandler) Create(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		FileID      string `json:"fileId"`
		FilePath    string `json:"filePath"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Failed to create notebook", errors.WithCause(err))
	}

	notebook := semesterbuddy.Notebook{
		UserID:      user.ID,
		Title:       body.Title,
		Description: body.Description,
		FileID:      body.FileID,
		FilePath:    body.FilePath,
	}
	if err := h.Store.Create(&notebook); err != nil {
		return nil, errors.New("Failed to create notebook", errors.WithCause(err))
	}

	return created{formatNotebook(&notebook)}, nil
}

func (h *NotebookHandler) Update(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("Failed to update notebook", errors.WithCause(err))
	}

	existing, err := h.Store.Get(id)
	if err != nil {
		return nil, errors.New("Failed to update notebook", errors.WithCause(err))
	}
	if existing == nil || existing.UserID != user.ID {
		return nil, errors.New("Notebook not found", errors.NotFound())
	}

	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Failed to update notebook", errors.WithCause(err))
	}

	ok, err := h.Store.Update(id, semesterbuddy.NotebookUpdate{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil || !ok {
		return nil, errors.New("Failed to update notebook", errors.WithCause(err))
	}

	updated, err := h.Store.Get(id)
	if err != nil || updated == nil {
		return nil, errors.New("Failed to update notebook", errors.WithCause(err))
	}

	return formatNotebook(updated), nil
}

func (h *NotebookHandler) Delete(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("Failed to delete notebook", errors.WithCause(err))
	}

	existing, err := h.Store.Get(id)
	if err != nil {
		return nil, errors.New("Failed to delete notebook", errors.WithCause(err))
	}
	if existing == nil || existing.UserID != user.ID {
		return nil, errors.New("Notebook not found", errors.NotFound())
	}

	if ref := existing.AttachmentRef(); ref != "" {
		if err := h.Files.Delete(ref); err != nil {
			h.Logger.Error("could not delete notebook attachment: ", err)
		}
	}

	ok, err := h.Store.Delete(id)
	if err != nil || !ok {
		return nil, errors.New("Failed to delete notebook", errors.WithCause(err))
	}

	return map[string]interface{}{
		"message": "Notebook deleted successfully",
	}, nil
}

func formatNotebook(notebook *semesterbuddy.Notebook) map[string]interface{} {
	formatted := map[string]interface{}{
		"id":          strconv.Itoa(notebook.ID),
		"userId":      strconv.Itoa(notebook.UserID),
		"title":       notebook.Title,
		"description": notebook.Description,
		"createdAt":   notebook.CreatedAt.Format(time.RFC3339),
		"updatedAt":   notebook.UpdatedAt.Format(time.RFC3339),
	}
	if notebook.FileID != "" {
		formatted["fileId"] = notebook.FileID
	}
	if notebook.FilePath != "" {
		formatted["filePath"] = notebook.FilePath
	}

	return formatted
}
