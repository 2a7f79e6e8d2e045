package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookapp-backend/internal/domains/user"
	"bookapp-backend/pkg/password"
)

// userService implements user.Service.
type userService struct {
	repo user.Repository
}

// NewUserService creates the account service.
func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Signup(ctx context.Context, form user.SignupForm) (*user.UserDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	// One existence query covers both unique columns; which one collided
	// is not surfaced.
	exists, err := s.repo.ExistsByEmailOrUsername(ctx, form.Email, form.Username)
	if err != nil {
		return nil, fmt.Errorf("check account exists: %w", err)
	}
	if exists {
		return nil, user.ErrAccountExists
	}

	hash, err := password.Hash(form.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        form.Email,
		Username:     form.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, form user.LoginForm) (*user.UserDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, form.Email)
	if err != nil {
		// Unknown email and wrong password produce the same error.
		return nil, user.ErrInvalidCredentials
	}

	if !password.Verify(form.Password, u.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	dto := u.ToDTO()
	return &dto, nil
}
