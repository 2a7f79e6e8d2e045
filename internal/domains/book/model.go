package book

import (
	"time"

	"github.com/google/uuid"
)

// Reading statuses. Stored as plain strings; the application only ever
// produces these four values.
const (
	StatusReadingNow  = "Reading Now"
	StatusWantToRead  = "Want to Read"
	StatusAlreadyRead = "Already Read"
	StatusFinished    = "Finished"
)

// Statuses lists every valid reading status.
func Statuses() []string {
	return []string{StatusReadingNow, StatusWantToRead, StatusAlreadyRead, StatusFinished}
}

// Covers is the fixed set of bundled cover designs users pick from.
// There is no upload flow; the value is a path into the static assets.
func Covers() []string {
	return []string{"img/book0.png", "img/book00.png"}
}

// Book is a reading-progress record owned by exactly one user.
// UserID never changes after creation.
type Book struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`

	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Genre  string `json:"genre" db:"genre"`
	Pages  int    `json:"pages" db:"pages"`
	Cover  string `json:"cover" db:"cover"`
	Status string `json:"status" db:"status"`

	Notes     string `json:"notes" db:"notes"`
	Rating    *int   `json:"rating" db:"rating"`
	PagesRead int    `json:"pages_read" db:"pages_read"`

	StartDate  *time.Time `json:"start_date" db:"start_date"`
	FinishDate *time.Time `json:"finish_date" db:"finish_date"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
