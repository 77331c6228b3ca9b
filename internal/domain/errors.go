package domain

import "errors"

// ErrNotFound is returned by catalog lookups when the requested destination
// does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when catalog data fails a load-time rule
// (e.g. duplicate slug, rating outside 0-5, negative review count).
// A catalog that fails validation is never served.
var ErrValidation = errors.New("validation error")
