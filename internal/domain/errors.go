package domain

import "errors"

var (
	// ErrNotFound is returned when a category, item or user id matches no row
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a derived category id already exists
	ErrConflict = errors.New("already exists")

	// ErrValidation is returned when a request payload fails structural checks
	ErrValidation = errors.New("invalid input")

	// ErrInvalidCredentials is returned on login or credential-change mismatch
	ErrInvalidCredentials = errors.New("invalid credentials")
)
