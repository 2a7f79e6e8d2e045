package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the book business logic contract. Every read or mutation of an
// existing book goes through the ownership check: the requester must be the
// book's owner or the operation fails with ErrNotOwner.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, form BookForm) (*Book, error)
	Get(ctx context.Context, bookID, requesterID uuid.UUID) (*Book, error)
	ListByStatus(ctx context.Context, ownerID uuid.UUID, status string) ([]Book, error)
	Update(ctx context.Context, bookID, requesterID uuid.UUID, form BookForm) (*Book, error)
	Delete(ctx context.Context, bookID, requesterID uuid.UUID) error
}
