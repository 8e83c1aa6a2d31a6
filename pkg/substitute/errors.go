package substitute

import "errors"

// Fatal failure categories of a substitution run. Returned errors wrap one of
// these so callers can classify them with errors.Is.
var (
	ErrInputMissing     = errors.New("required input missing")
	ErrInvalidOption    = errors.New("invalid option")
	ErrNoPlaceholder    = errors.New("token pattern has no TOKEN placeholder")
	ErrFileRead         = errors.New("failed reading file")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
	ErrMalformedSecrets = errors.New("malformed secrets payload")
	ErrFileWrite        = errors.New("failed writing output")
)
