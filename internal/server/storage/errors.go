package storage

import "errors"

// Common storage errors
var (
	// ErrAdminNotFound indicates that the admin record was not found
	ErrAdminNotFound = errors.New("admin not found")

	// ErrAdminAlreadyExists indicates that an admin with this email already exists
	ErrAdminAlreadyExists = errors.New("admin already exists")

	// ErrWorkNotFound indicates that the portfolio entry was not found
	ErrWorkNotFound = errors.New("previous work not found")

	// ErrContactNotFound indicates that the contact record was not created yet
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactAlreadyExists indicates that the single contact record already exists
	ErrContactAlreadyExists = errors.New("contact already exists")
)
