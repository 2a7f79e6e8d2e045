package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users. The concrete Postgres
// implementation lives in repository/; tests substitute an in-memory fake.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmailOrUsername is a single existence query against both
	// unique columns, matching the signup duplicate check.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// Delete removes a user; owned books go with it via the schema's
	// ON DELETE CASCADE. No HTTP route exposes this.
	Delete(ctx context.Context, id uuid.UUID) error
}
