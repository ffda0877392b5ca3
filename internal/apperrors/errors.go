package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotReady indicates the working document is not available yet: the
// initial load has not completed or has failed.
var ErrNotReady = errors.New("working document not ready")

// ErrLoadFailure indicates the persistence gateway could not produce a
// document at startup.
var ErrLoadFailure = errors.New("document load failed")

// ErrSaveFailure indicates the persistence gateway rejected or could not
// complete a write-back.
var ErrSaveFailure = errors.New("document save failed")

// ErrMalformedPayload indicates an import payload that is not structurally
// parseable.
var ErrMalformedPayload = errors.New("malformed payload")

// ErrSchemaViolation indicates an import payload that parsed but lacks the
// mandatory presence markers (itinerary, hotels).
var ErrSchemaViolation = errors.New("payload violates document schema")
