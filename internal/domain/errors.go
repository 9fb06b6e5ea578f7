package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on insert.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized indicates the caller is not an authenticated staff user.
	ErrUnauthorized = errors.New("unauthorized")
)

// Locales recognized by the translation tables.
const (
	LocaleEN = "en"
	LocaleAR = "ar"
)
