package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrTermRejected  = errors.New("term rejected")
	ErrInvalidConfig = errors.New("invalid configuration")
)
