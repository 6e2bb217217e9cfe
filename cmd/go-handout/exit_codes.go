package main

import (
	"errors"
	"os"

	handout "github.com/bcarden/go-handout"
	"github.com/bcarden/go-handout/internal/config"
)

// Exit codes for the go-handout CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitConvert = 4 // Rasterization or LibreOffice conversion errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Pipeline errors (exit 4)
	if errors.Is(err, handout.ErrConversion) ||
		errors.Is(err, handout.ErrOpenSource) ||
		errors.Is(err, handout.ErrRenderPage) ||
		errors.Is(err, handout.ErrCompose) ||
		errors.Is(err, handout.ErrOutputInvalid) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrUnsupportedInput) ||
		errors.Is(err, handout.ErrEmptyPath) ||
		errors.Is(err, handout.ErrInvalidTiling) ||
		errors.Is(err, handout.ErrInvalidDPI) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidDPI) ||
		errors.Is(err, config.ErrInvalidTiles) ||
		errors.Is(err, config.ErrInvalidUploadCap) {
		return ExitUsage
	}

	return ExitGeneral
}
