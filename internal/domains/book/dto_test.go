package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookForm() BookForm {
	return BookForm{
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  "Sci-Fi",
		Pages:  "412",
		Cover:  "img/book0.png",
		Status: StatusWantToRead,
	}
}

func TestBookFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BookForm)
		wantErr bool
	}{
		{"valid", func(f *BookForm) {}, false},
		{"missing title", func(f *BookForm) { f.Title = "" }, true},
		{"missing author", func(f *BookForm) { f.Author = "" }, true},
		{"missing genre", func(f *BookForm) { f.Genre = "" }, true},
		{"missing pages", func(f *BookForm) { f.Pages = "" }, true},
		{"non-numeric pages", func(f *BookForm) { f.Pages = "many" }, true},
		{"missing cover", func(f *BookForm) { f.Cover = "" }, true},
		{"unknown cover", func(f *BookForm) { f.Cover = "img/other.png" }, true},
		{"unknown status", func(f *BookForm) { f.Status = "Maybe Later" }, true},
		{"empty status allowed", func(f *BookForm) { f.Status = "" }, false},
		{"non-numeric rating", func(f *BookForm) { f.Rating = "five" }, true},
		{"non-numeric pages read", func(f *BookForm) { f.PagesRead = "some" }, true},
		{"bad start date format", func(f *BookForm) { f.StartDate = "01/02/2026" }, true},
		{"bad finish date format", func(f *BookForm) { f.Status = StatusAlreadyRead; f.StartDate = "2026-01-02"; f.FinishDate = "yesterday" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBookForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookFormToInputDefaults(t *testing.T) {
	form := validBookForm()
	form.Status = ""
	form.Rating = ""
	form.PagesRead = ""

	in, err := form.ToInput()
	require.NoError(t, err)

	assert.Equal(t, StatusReadingNow, in.Status)
	assert.Nil(t, in.Rating)
	assert.Equal(t, 0, in.PagesRead)
	assert.Nil(t, in.StartDate)
	assert.Nil(t, in.FinishDate)
}

func TestBookFormToInputTypedFields(t *testing.T) {
	form := validBookForm()
	form.Status = StatusAlreadyRead
	form.Rating = "5"
	form.PagesRead = "412"
	form.StartDate = "2026-01-02"
	form.FinishDate = "2026-02-10"

	in, err := form.ToInput()
	require.NoError(t, err)

	assert.Equal(t, 412, in.Pages)
	require.NotNil(t, in.Rating)
	assert.Equal(t, 5, *in.Rating)
	assert.Equal(t, 412, in.PagesRead)
	require.NotNil(t, in.StartDate)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), *in.StartDate)
	require.NotNil(t, in.FinishDate)
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), *in.FinishDate)
}

func TestBookFormToInputBounds(t *testing.T) {
	form := validBookForm()
	form.Pages = "0"
	_, err := form.ToInput()
	assert.Error(t, err)

	form = validBookForm()
	form.Pages = "-3"
	_, err = form.ToInput()
	assert.Error(t, err)

	form = validBookForm()
	form.PagesRead = "-1"
	_, err = form.ToInput()
	assert.Error(t, err)
}

func TestInputValidatePagesBounds(t *testing.T) {
	// The int zero value must not slip through as "empty".
	assert.Error(t, Input{Pages: 0}.Validate())
	assert.Error(t, Input{Pages: -1}.Validate())
	assert.NoError(t, Input{Pages: 1}.Validate())

	assert.Error(t, Input{Pages: 1, PagesRead: -1}.Validate())
	assert.NoError(t, Input{Pages: 1, PagesRead: 0}.Validate())
}

func TestValidateStatusDates(t *testing.T) {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	finish := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateStatusDates(StatusWantToRead, nil, nil))
	assert.NoError(t, ValidateStatusDates(StatusFinished, nil, nil))

	assert.ErrorIs(t, ValidateStatusDates(StatusReadingNow, nil, nil), ErrStartDateRequired)
	assert.NoError(t, ValidateStatusDates(StatusReadingNow, &start, nil))

	assert.ErrorIs(t, ValidateStatusDates(StatusAlreadyRead, nil, nil), ErrStartFinishRequired)
	assert.ErrorIs(t, ValidateStatusDates(StatusAlreadyRead, &start, nil), ErrStartFinishRequired)
	assert.ErrorIs(t, ValidateStatusDates(StatusAlreadyRead, nil, &finish), ErrStartFinishRequired)
	assert.NoError(t, ValidateStatusDates(StatusAlreadyRead, &start, &finish))
}
