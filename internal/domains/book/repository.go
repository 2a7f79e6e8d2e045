package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for books. The Postgres
// implementation lives in repository/; service tests use an in-memory fake.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// ListByOwner returns the owner's books in persistence order.
	// status = "" means no filter.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status string) ([]Book, error)

	// Update overwrites every mutable column of the row. UserID is never
	// part of the update.
	Update(ctx context.Context, b *Book) error

	Delete(ctx context.Context, id uuid.UUID) error
}
