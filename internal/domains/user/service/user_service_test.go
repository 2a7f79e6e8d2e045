package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookapp-backend/internal/domains/user"
	"bookapp-backend/pkg/password"
)

// fakeUserRepo is an in-memory user.Repository for service tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return user.ErrAccountExists
		}
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func signupForm() user.SignupForm {
	return user.SignupForm{
		Email:           "reader@example.com",
		Username:        "reader",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestSignup(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	dto, err := svc.Signup(context.Background(), signupForm())
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", dto.Email)
	assert.Equal(t, "reader", dto.Username)
	assert.NotEqual(t, uuid.Nil, dto.ID)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	dto, err := svc.Signup(context.Background(), signupForm())
	require.NoError(t, err)

	stored := repo.users[dto.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, password.Verify("secret123", stored.PasswordHash))
}

func TestSignupDuplicateAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Signup(context.Background(), signupForm())
	require.NoError(t, err)

	// Same email, different username
	form := signupForm()
	form.Username = "otherreader"
	_, err = svc.Signup(context.Background(), form)
	assert.ErrorIs(t, err, user.ErrAccountExists)

	// Same username, different email
	form = signupForm()
	form.Email = "other@example.com"
	_, err = svc.Signup(context.Background(), form)
	assert.ErrorIs(t, err, user.ErrAccountExists)
}

func TestSignupInvalidForm(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	form := signupForm()
	form.ConfirmPassword = "different"

	_, err := svc.Signup(context.Background(), form)
	assert.Error(t, err)
	assert.Empty(t, repo.users)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Signup(context.Background(), signupForm())
	require.NoError(t, err)

	dto, err := svc.Login(context.Background(), user.LoginForm{
		Email:    "reader@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, dto.ID)
}

func TestLoginUniformFailure(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Signup(context.Background(), signupForm())
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable.
	_, unknownErr := svc.Login(context.Background(), user.LoginForm{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, wrongErr := svc.Login(context.Background(), user.LoginForm{
		Email:    "reader@example.com",
		Password: "wrongpass",
	})

	assert.ErrorIs(t, unknownErr, user.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, user.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}
