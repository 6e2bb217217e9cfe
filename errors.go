package handout

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath     = errors.New("input path cannot be empty")
	ErrInvalidDPI    = errors.New("dpi must be positive")
	ErrInvalidTiling = errors.New("invalid tiling mode")

	// Pipeline errors.
	ErrOpenSource    = errors.New("failed to open source document")
	ErrRenderPage    = errors.New("failed to render page")
	ErrCompose       = errors.New("page composition failed")
	ErrOutputInvalid = errors.New("composed document failed validation")

	// External conversion errors.
	ErrConversion = errors.New("presentation conversion failed")

	// Layout validation errors.
	ErrInvalidPageSize = errors.New("invalid page dimensions")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidGap      = errors.New("invalid gap")
)
