package user

import "context"

// Service is the account business logic contract.
type Service interface {
	// Signup creates an account. It does not authenticate; the caller is
	// sent to the login flow afterwards.
	Signup(ctx context.Context, form SignupForm) (*UserDTO, error)

	// Login verifies credentials and returns the account on success.
	// Session establishment is the handler's job (it owns the cookies).
	Login(ctx context.Context, form LoginForm) (*UserDTO, error)
}
