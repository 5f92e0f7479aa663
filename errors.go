package mdquiz

import "errors"

// Sentinel errors for library operations.
var (
	// Definition loading errors.
	ErrQuizRead  = errors.New("failed to read quiz definition")
	ErrQuizParse = errors.New("quiz definition is not valid structured data")

	// Encoding errors.
	ErrQuizEncode = errors.New("quiz definition cannot be encoded")

	// Run configuration errors.
	ErrInvalidConfig = errors.New("invalid quiz preprocessor configuration")

	// Protocol errors.
	ErrUnknownBookItem = errors.New("unknown book item")

	// Preview errors.
	ErrPreviewRender = errors.New("preview rendering failed")
)
