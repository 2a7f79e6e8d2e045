package book

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")

	// ErrNotOwner means the book exists but belongs to someone else.
	// Surfaced as a flash + redirect, never as data.
	ErrNotOwner = errors.New("not authorized to access this book")

	// ErrOwnerNotFound maps a foreign-key violation: the owning user
	// disappeared between authentication and the write.
	ErrOwnerNotFound = errors.New("owner does not exist")
)
