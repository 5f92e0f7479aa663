package main

import (
	"errors"
	"os"

	mdquiz "github.com/mdquiz/go-mdquiz"
)

// Exit codes for mdbook-quiz.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Book rewritten
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, protocol input, or configuration
	ExitIO         = 3 // Definition or preview file unreadable
	ExitDefinition = 4 // Definition unparsable or unencodable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Definition content errors (exit 4)
	if errors.Is(err, mdquiz.ErrQuizParse) ||
		errors.Is(err, mdquiz.ErrQuizEncode) {
		return ExitDefinition
	}

	// I/O errors (exit 3)
	if errors.Is(err, mdquiz.ErrQuizRead) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrReadPreview) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, mdquiz.ErrInvalidConfig) ||
		errors.Is(err, mdquiz.ErrUnknownBookItem) ||
		errors.Is(err, ErrDecodeInput) {
		return ExitUsage
	}

	return ExitGeneral
}
