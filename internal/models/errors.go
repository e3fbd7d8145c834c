package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername indicates a user with the same username already exists
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrDuplicateCardNumber indicates the issued card number is already taken
	ErrDuplicateCardNumber = errors.New("duplicate card number")
)
