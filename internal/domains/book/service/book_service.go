package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookapp-backend/internal/domains/book"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

// NewBookService creates the book CRUD service.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, ownerID uuid.UUID, form book.BookForm) (*book.Book, error) {
	in, err := form.ToInput()
	if err != nil {
		return nil, err
	}

	if err := book.ValidateStatusDates(in.Status, in.StartDate, in.FinishDate); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &book.Book{
		ID:         uuid.New(),
		UserID:     ownerID,
		Title:      in.Title,
		Author:     in.Author,
		Genre:      in.Genre,
		Pages:      in.Pages,
		Cover:      in.Cover,
		Status:     in.Status,
		Notes:      in.Notes,
		Rating:     in.Rating,
		PagesRead:  in.PagesRead,
		StartDate:  in.StartDate,
		FinishDate: in.FinishDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *bookService) Get(ctx context.Context, bookID, requesterID uuid.UUID) (*book.Book, error) {
	return s.loadOwned(ctx, bookID, requesterID)
}

func (s *bookService) ListByStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]book.Book, error) {
	books, err := s.repo.ListByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *bookService) Update(ctx context.Context, bookID, requesterID uuid.UUID, form book.BookForm) (*book.Book, error) {
	in, err := form.ToInput()
	if err != nil {
		return nil, err
	}

	b, err := s.loadOwned(ctx, bookID, requesterID)
	if err != nil {
		return nil, err
	}

	b.Title = in.Title
	b.Author = in.Author
	b.Genre = in.Genre
	b.Pages = in.Pages
	b.Cover = in.Cover
	b.Status = in.Status
	b.Notes = in.Notes
	b.PagesRead = in.PagesRead

	// Fields the edit form may leave blank keep their stored value.
	if in.Rating != nil {
		b.Rating = in.Rating
	}
	if in.StartDate != nil {
		b.StartDate = in.StartDate
	}
	if in.FinishDate != nil {
		b.FinishDate = in.FinishDate
	}

	// Consistency rule holds against the merged record, on update as well
	// as create.
	if err := book.ValidateStatusDates(b.Status, b.StartDate, b.FinishDate); err != nil {
		return nil, err
	}

	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *bookService) Delete(ctx context.Context, bookID, requesterID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, bookID, requesterID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, bookID)
}

// loadOwned fetches a book and enforces ownership: NotFound before
// Forbidden, so probing ids reveals nothing about other users' shelves.
func (s *bookService) loadOwned(ctx context.Context, bookID, requesterID uuid.UUID) (*book.Book, error) {
	b, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if b.UserID != requesterID {
		return nil, book.ErrNotOwner
	}
	return b, nil
}
