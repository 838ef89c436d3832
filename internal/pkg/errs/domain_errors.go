package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrArtworkNotFound  = errors.New("artwork not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Order errors
	ErrArtworkInUse = errors.New("artwork is referenced by existing orders")

	// Auth errors
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrBusy             = errors.New("resource busy, retry later")
	ErrStoreUnavailable = errors.New("durable store unavailable")
)
