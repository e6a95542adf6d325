package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnavailable indicates that an external source (configuration, rates,
// statistics) could not be reached. Callers are expected to degrade to the
// documented fallback rather than surface this to the user.
var ErrUnavailable = errors.New("source unavailable")
