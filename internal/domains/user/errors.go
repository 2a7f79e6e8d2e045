package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountExists covers duplicate email OR username; the signup flow
	// does not reveal which one collided.
	ErrAccountExists = errors.New("email or username already exists")
)

// Service-level errors
var (
	// ErrInvalidCredentials is deliberately uniform: a missing account and
	// a wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
