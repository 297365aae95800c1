package store

import "errors"

// Sentinel errors returned by Store operations. Callers match with errors.Is;
// the CLI and web layers translate them into exit codes and HTTP statuses.
var (
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")
	ErrInvalidSlug        = errors.New("invalid slug")
	ErrDuplicateWorkflow  = errors.New("workflow already exists")
	ErrNotFound           = errors.New("workflow not found")
	ErrValidation         = errors.New("validation failed")
)
