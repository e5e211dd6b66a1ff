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

type NoteHandler struct {
	Store         semesterbuddy.NoteStore
	Index         semesterbuddy.NoteIndex
	Files         files.Store
	Logger        log.Logger
	Authenticator *Authenticator
}

func (h *NoteHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/notes", JSONFormatter(h.Authenticator.Authenticate(h.List)))
	router.POST("/notes", JSONFormatter(h.Authenticator.Authenticate(h.Create)))
	router.GET("/notes/search", JSONFormatter(h.Authenticator.Authenticate(h.Search)))
	router.PUT("/notes/:id", JSONFormatter(h.Authenticator.Authenticate(h.Update)))
	router.DELETE("/notes/:id", JSONFormatter(h.Authenticator.Authenticate(h.Delete)))
}

func (h *NoteHandler) List(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	notes, err := h.Store.ListByOwner(user.ID)
	if err != nil {
		return nil, errors.New("Failed to fetch notes", errors.WithCause(err))
	}

	formatted := make([]interface{}, len(notes))
	for i, note := range notes {
		formatted[i] = formatNote(note)
	}

	return formatted, nil
}

func (h *NoteHandler) Create(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	var body struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Type     string `json:"type"`
		FileID   string `json:"fileId"`
		FilePath string `json:"filePath"`
		FileName string `json:"fileName"`
		FileSize int64  `json:"fileSize"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Failed to create note", errors.WithCause(err))
	}

	if body.Type == "" {
		body.Type = "text"
	}

	note := semesterbuddy.Note{
		UserID:   user.ID,
		Title:    body.Title,
		Content:  body.Content,
		Type:     body.Type,
		FileID:   body.FileID,
		FilePath: body.FilePath,
		FileName: body.FileName,
		FileSize: body.FileSize,
	}
	if err := h.Store.Create(&note); err != nil {
		return nil, errors.New("Failed to create note", errors.WithCause(err))
	}

	// Search stays best effort: the note exists whether or not it got
	// indexed.
	if err := h.Index.Index(&note); err != nil {
		h.Logger.Error("could not index note: ", err)
	}

	return created{formatNote(&note)}, nil
}

func (h *NoteHandler) Update(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("Failed to update note", errors.WithCause(err))
	}

	existing, err := h.Store.Get(id)
	if err != nil {
		return nil, errors.New("Failed to update note", errors.WithCause(err))
	}
	if existing == nil || existing.UserID != user.ID {
		// Somebody else's note reads as absent.
		return nil, errors.New("Note not found", errors.NotFound())
	}

	var body struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Type     *string `json:"type"`
		FileID   *string `json:"fileId"`
		FilePath *string `json:"filePath"`
		FileName *string `json:"fileName"`
		FileSize *int64  `json:"fileSize"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Failed to update note", errors.WithCause(err))
	}

	ok, err := h.Store.Update(id, semesterbuddy.NoteUpdate{
		Title:    body.Title,
		Content:  body.Content,
		Type:     body.Type,
		FileID:   body.FileID,
		FilePath: body.FilePath,
		FileName: body.FileName,
		FileSize: body.FileSize,
	})
	if err != nil || !ok {
		return nil, errors.New("Failed to update note", errors.WithCause(err))
	}

	updated, err := h.Store.Get(id)
	if err != nil || updated == nil {
		return nil, errors.New("Failed to update note", errors.WithCause(err))
	}

	if err := h.Index.Index(updated); err != nil {
		h.Logger.Error("could not index note: ", err)
	}

	return formatNote(updated), nil
}

func (h *NoteHandler) Delete(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, errors.New("Failed to delete note", errors.WithCause(err))
	}

	existing, err := h.Store.Get(id)
	if err != nil {
		return nil, errors.New("Failed to delete note", errors.WithCause(err))
	}
	if existing == nil || existing.UserID != user.ID {
		return nil, errors.New("Note not found", errors.NotFound())
	}

	// Best-effort attachment cleanup first. A failure here is logged and
	// the record deletion proceeds: the worst case is an orphaned file,
	// never an undeletable note.
	if ref := existing.AttachmentRef(); ref != "" {
		if err := h.Files.Delete(ref); err != nil {
			h.Logger.Error("could not delete note attachment: ", err)
		}
	}

	ok, err := h.Store.Delete(id)
	if err != nil || !ok {
		return nil, errors.New("Failed to delete note", errors.WithCause(err))
	}

	if err := h.Index.Delete(id); err != nil {
		h.Logger.Error("could not deindex note: ", err)
	}

	return map[string]interface{}{
		"message": "Note deleted successfully",
	}, nil
}

func (h *NoteHandler) Search(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	notes, err := h.Store.ListByOwner(user.ID)
	if err != nil {
		return nil, errors.New("Failed to search notes", errors.WithCause(err))
	}

	byID := make(map[int]*semesterbuddy.Note, len(notes))
	ids := make([]int, len(notes))
	for i, note := range notes {
		byID[note.ID] = note
		ids[i] = note.ID
	}

	found, err := h.Index.Search(ids, c.Query("q"))
	if err != nil {
		return nil, errors.New("Failed to search notes", errors.WithCause(err))
	}

	formatted := make([]interface{}, 0, len(found))
	for _, id := range found {
		if note, ok := byID[id]; ok {
			formatted = append(formatted, formatNote(note))
		}
	}

	return formatted, nil
}

func formatNote(note *semesterbuddy.Note) map[string]interface{} {
	formatted := map[string]interface{}{
		"id":        strconv.Itoa(note.ID),
		"userId":    strconv.Itoa(note.UserID),
		"title":     note.Title,
		"content":   note.Content,
		"type":      note.Type,
		"createdAt": note.CreatedAt.Format(time.RFC3339),
		"updatedAt": note.UpdatedAt.Format(time.RFC3339),
	}
	if note.FileID != "" {
		formatted["fileId"] = note.FileID
	}
	if note.FilePath != "" {
		formatted["filePath"] = note.FilePath
	}
	if note.FileName != "" {
		formatted["fileName"] = note.FileName
	}
	if note.FileSize != 0 {
		formatted["fileSize"] = note.FileSize
	}

	return formatted
}
