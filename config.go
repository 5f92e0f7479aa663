package mdquiz

import "fmt"

// Config carries the run-wide quiz options, resolved once per run and
// shared read-only across all chapters. Nil fields mean "not supplied".
type Config struct {
	// LogEndpoint is the URL quiz answers are reported to. Opaque data
	// handed to the output markup; the preprocessor never dials it.
	LogEndpoint *string

	// Fullscreen marks quizzes as fullscreen-capable. Presence alone
	// enables the output attribute; the boolean value is not consulted.
	Fullscreen *bool
}

// ParseConfig resolves Config from the preprocessor's options table as it
// appears in book.toml. Unknown keys are ignored; known keys with the wrong
// type are rejected.
func ParseConfig(options map[string]any) (Config, error) {
	var cfg Config

	if raw, ok := options["log-endpoint"]; ok {
		s, ok := raw.(string)
		if !ok {
			return Config{}, fmt.Errorf("%w: log-endpoint must be a string, got %T", ErrInvalidConfig, raw)
		}
		cfg.LogEndpoint = &s
	}

	if raw, ok := options["fullscreen"]; ok {
		b, ok := raw.(bool)
		if !ok {
			return Config{}, fmt.Errorf("%w: fullscreen must be a boolean, got %T", ErrInvalidConfig, raw)
		}
		cfg.Fullscreen = &b
	}

	return cfg, nil
}
