package matching

import "errors"

// ErrEmptyProfile is returned when a developer profile yields no usable text.
// Scoring must not run on an empty profile; the HTTP layer maps this to a
// client error.
var ErrEmptyProfile = errors.New("developer profile produced no usable text")
