package homework

import "errors"

// Shape and content errors raised while validating an API response or
// formatting a record. The polling loop renders these into user-visible
// diagnostics, so the texts must stay stable.
var (
	ErrTypeMismatch  = errors.New("response shape mismatch")
	ErrMissingField  = errors.New("required field is missing")
	ErrUnknownStatus = errors.New("unknown homework status")
)
