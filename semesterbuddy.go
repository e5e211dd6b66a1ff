package semesterbuddy

import (
	"time"
)

type SigningKey struct {
	Key string `json:"k"`
}

type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Note struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`

	Content string `json:"content,omitempty"`
	Type    string `json:"type"`

	// Attachment reference: FileID in bucket mode, FilePath in disk mode.
	// At most one is set.
	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) AttachmentRef() string {
	if n.FileID != "" {
		return n.FileID
	}
	return n.FilePath
}

type Notebook struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`

	Description string `json:"description,omitempty"`

	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Notebook) AttachmentRef() string {
	if n.FileID != "" {
		return n.FileID
	}
	return n.FilePath
}

type LectureAttachment struct {
	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

func (a LectureAttachment) Ref() string {
	if a.FileID != "" {
		return a.FileID
	}
	return a.FilePath
}

type Lecture struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`

	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	// The only entity carrying more than one attachment. Order is the
	// order of upload and is preserved.
	Attachments []LectureAttachment `json:"attachments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Assignment statuses and priorities are open strings on the wire but only
// these values are ever written by the clients.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Assignment struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`

	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority,omitempty"`

	FileID   string `json:"fileId,omitempty"`
	FilePath string `json:"filePath,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepository interface {
	Get(int) (*User, error)
	Search(email string) (*User, error)
	Upsert(*User) error
	List() ([]*User, error)
}

// NoteUpdate carries the fields an update may touch. A nil field leaves the
// stored value untouched, mirroring a partial $set.
type NoteUpdate struct {
	Title    *string
	Content  *string
	Type     *string
	FileID   *string
	FilePath *string
	FileName *string
	FileSize *int64
}

type NoteStore interface {
	Create(*Note) error
	ListByOwner(userID int) ([]*Note, error)
	Get(id int) (*Note, error)
	Update(id int, u NoteUpdate) (bool, error)
	Delete(id int) (bool, error)
}

type NotebookUpdate struct {
	Title       *string
	Description *string
}

type NotebookStore interface {
	Create(*Notebook) error
	ListByOwner(userID int) ([]*Notebook, error)
	Get(id int) (*Notebook, error)
	Update(id int, u NotebookUpdate) (bool, error)
	Delete(id int) (bool, error)
}

type LectureUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Notes       *string
	Attachments *[]LectureAttachment
}

type LectureStore interface {
	Create(*Lecture) error
	ListByOwner(userID int) ([]*Lecture, error)
	Get(id int) (*Lecture, error)
	Update(id int, u LectureUpdate) (bool, error)
	Delete(id int) (bool, error)
}

type AssignmentUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *string
	Priority    *string
}

type AssignmentStore interface {
	Create(*Assignment) error
	ListByOwner(userID int) ([]*Assignment, error)
	Get(id int) (*Assignment, error)
	Update(id int, u AssignmentUpdate) (bool, error)
	Delete(id int) (bool, error)
}

type NoteIndex interface {
	Index(*Note) error
	Search(ids []int, q string) ([]int, error)
	Delete(int) error
}
