package book

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

// Cross-field rules, enforced on create AND update. The messages are what
// the form shows the user.
var (
	ErrStartDateRequired = validation.NewError(
		"validation_start_date_required", "Please pick a start date.")
	ErrStartFinishRequired = validation.NewError(
		"validation_start_finish_required", "Please pick start and finish dates.")
)

// BookForm carries the raw /create and /edit form fields. Everything comes
// in as strings; ToInput produces the typed record.
type BookForm struct {
	Title      string `form:"title"`
	Author     string `form:"author"`
	Genre      string `form:"genre"`
	Pages      string `form:"pages"`
	Cover      string `form:"cover"`
	Status     string `form:"status"`
	Notes      string `form:"notes"`
	Rating     string `form:"rating"`
	PagesRead  string `form:"pages_read"`
	StartDate  string `form:"start_date"`
	FinishDate string `form:"finish_date"`
}

func (f BookForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required.Error("title is required")),
		validation.Field(&f.Author, validation.Required.Error("author is required")),
		validation.Field(&f.Genre, validation.Required.Error("genre is required")),
		validation.Field(&f.Pages,
			validation.Required.Error("number of pages is required"),
			is.Int.Error("pages must be a whole number"),
		),
		validation.Field(&f.Cover,
			validation.Required.Error("please choose a cover design"),
			validation.In(toAny(Covers())...).Error("unknown cover design"),
		),
		validation.Field(&f.Status,
			// Empty falls back to the default status in ToInput.
			validation.In(toAny(Statuses())...).Error("unknown status"),
		),
		validation.Field(&f.Rating, is.Int.Error("rating must be a whole number")),
		validation.Field(&f.PagesRead, is.Int.Error("pages read must be a whole number")),
		validation.Field(&f.StartDate, validation.Date(dateLayout).Error("start date must be YYYY-MM-DD")),
		validation.Field(&f.FinishDate, validation.Date(dateLayout).Error("finish date must be YYYY-MM-DD")),
	)
}

// Input is the typed, validated creation/update payload.
type Input struct {
	Title      string
	Author     string
	Genre      string
	Pages      int
	Cover      string
	Status     string
	Notes      string
	Rating     *int
	PagesRead  int
	StartDate  *time.Time
	FinishDate *time.Time
}

// ToInput validates the form and converts it into a typed Input. Defaults:
// empty status becomes "Reading Now", empty pages_read becomes 0, empty
// rating stays unset.
func (f BookForm) ToInput() (*Input, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	pages, err := strconv.Atoi(f.Pages)
	if err != nil {
		return nil, err
	}

	in := &Input{
		Title:  f.Title,
		Author: f.Author,
		Genre:  f.Genre,
		Pages:  pages,
		Cover:  f.Cover,
		Status: f.Status,
		Notes:  f.Notes,
	}

	if in.Status == "" {
		in.Status = StatusReadingNow
	}

	if f.Rating != "" {
		rating, err := strconv.Atoi(f.Rating)
		if err != nil {
			return nil, err
		}
		in.Rating = &rating
	}

	if f.PagesRead != "" {
		pagesRead, err := strconv.Atoi(f.PagesRead)
		if err != nil {
			return nil, err
		}
		in.PagesRead = pagesRead
	}

	if f.StartDate != "" {
		start, err := time.Parse(dateLayout, f.StartDate)
		if err != nil {
			return nil, err
		}
		in.StartDate = &start
	}
	if f.FinishDate != "" {
		finish, err := time.Parse(dateLayout, f.FinishDate)
		if err != nil {
			return nil, err
		}
		in.FinishDate = &finish
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// Validate checks the typed payload: positive page count, non-negative
// progress. Required rejects the int zero value, which Min alone treats
// as empty and skips.
func (in Input) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Pages,
			validation.Required.Error("pages must be at least 1"),
			validation.Min(1).Error("pages must be at least 1"),
		),
		validation.Field(&in.PagesRead, validation.Min(0).Error("pages read cannot be negative")),
	)
}

// ValidateStatusDates enforces the status/date consistency rule:
// "Reading Now" needs a start date, "Already Read" needs both dates.
func ValidateStatusDates(status string, start, finish *time.Time) error {
	switch status {
	case StatusReadingNow:
		if start == nil {
			return ErrStartDateRequired
		}
	case StatusAlreadyRead:
		if start == nil || finish == nil {
			return ErrStartFinishRequired
		}
	}
	return nil
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
