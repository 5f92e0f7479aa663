// Package defcodec decodes quiz definition files into generic structured
// values. It isolates the structured-data parsers behind one seam so the
// underlying libraries can be swapped without modifying callers.
package defcodec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// MaxInputSize limits definition input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var ErrInputTooLarge = errors.New("defcodec: input exceeds maximum size")

// Decode parses data in the format implied by the file extension into a
// generic value: nested map[string]any, []any, and string/number/boolean
// scalars. TOML is the native definition format and the default; ".yaml",
// ".yml", and ".json" are recognized explicitly.
func Decode(ext string, data []byte) (any, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	switch ext {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("defcodec: %w", err)
		}
		return v, nil
	case ".json":
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("defcodec: %w", err)
		}
		return v, nil
	default:
		// TOML documents are always a table at the top level.
		v := map[string]any{}
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("defcodec: %w", err)
		}
		return v, nil
	}
}
