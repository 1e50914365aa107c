package prose

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidID     = errors.New("invalid id")
	ErrNoTitle       = errors.New("document has no title")
	ErrEmptyInput    = errors.New("input is empty")
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidMode   = errors.New("invalid render mode")

	// Page rendering errors.
	ErrLayoutRender = errors.New("page layout rendering failed")
)
