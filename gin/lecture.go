package gin

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/errors"
	"github.com/tdelacour/semesterbuddy/log"
)

type LectureHandler struct {
	Store         semesterbuddy.LectureStore
	Logger        log.Logger
	Authenticator *Authenticator
}

func (h *LectureHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/lecturenotes", JSONFormatter(h.Authenticator.Authenticate(h.List)))
	router.POST("/lecturenotes", JSONFormatter(h.Authenticator.Authenticate(h.Create)))
}

func (h *LectureHandler) List(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	lectures, err := h.Store.ListByOwner(user.ID)
	if err != nil {
		return nil, errors.New("Failed to fetch lectures", errors.WithCause(err))
	}

	formatted := make([]interface{}, len(lectures))
	for i, lecture := range lectures {
		formatted[i] = formatLecture(lecture)
	}

	return formatted, nil
}

func (h *LectureHandler) Create(c *gin.Context) (interface{}, error) {
	user, err := GetUser(c)
	if err != nil {
		return nil, err
	}

	var body struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
		Notes       string    `json:"notes"`
		Attachments []struct {
			FileID   string `json:"fileId"`
			FilePath string `json:"filePath"`
			FileName string `json:"fileName"`
			FileSize int64  `json:"fileSize"`
		} `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Failed to create lecture", errors.WithCause(err))
	}

	attachments := make([]semesterbuddy.LectureAttachment, len(body.Attachments))
	for i, a := range body.Attachments {
		attachments[i] = semesterbuddy.LectureAttachment{
			FileID:   a.FileID,
			FilePath: a.FilePath,
			FileName: a.FileName,
			FileSize: a.FileSize,
		}
	}

	lecture := semesterbuddy.Lecture{
		UserID:      user.ID,
		Title:       body.Title,
		Description: body.Description,
		Date:        body.Date,
		Notes:       body.Notes,
		Attachments: attachments,
	}
	if err := h.Store.Create(&lecture); err != nil {
		return nil, errors.New("Failed to create lecture", errors.WithCause(err))
	}

	return created{formatLecture(&lecture)}, nil
}

func formatLecture(lecture *semesterbuddy.Lecture) map[string]interface{} {
	attachments := make([]map[string]interface{}, len(lecture.Attachments))
	for i, a := range lecture.Attachments {
		attachment := map[string]interface{}{
			"fileName": a.FileName,
			"fileSize": a.FileSize,
		}
		if a.FileID != "" {
			attachment["fileId"] = a.FileID
		}
		if a.FilePath != "" {
			attachment["filePath"] = a.FilePath
		}
		attachments[i] = attachment
	}

	formatted := map[string]interface{}{
		"id":          strconv.Itoa(lecture.ID),
		"userId":      strconv.Itoa(lecture.UserID),
		"title":       lecture.Title,
		"description": lecture.Description,
		"notes":       lecture.Notes,
		"attachments": attachments,
		"createdAt":   lecture.CreatedAt.Format(time.RFC3339),
		"updatedAt":   lecture.UpdatedAt.Format(time.RFC3339),
	}
	if !lecture.Date.IsZero() {
		formatted["date"] = lecture.Date.Format(time.RFC3339)
	}

	return formatted
}
