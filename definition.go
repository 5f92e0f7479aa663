package mdquiz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdquiz/go-mdquiz/internal/defcodec"
)

// Definition is one quiz loaded from a definition file. Questions holds the
// generic structured value parsed from the file: nested map[string]any,
// []any, and string/number/boolean scalars. Immutable once loaded.
type Definition struct {
	Name      string
	Questions any
}

// LoadDefinition reads and parses the quiz definition at relPath, resolved
// against baseDir. The quiz name is the file's base name stripped of its
// extension. TOML is the native format; .yaml, .yml, and .json definitions
// are also accepted.
func LoadDefinition(baseDir, relPath string) (*Definition, error) {
	ext := filepath.Ext(relPath)
	name := strings.TrimSuffix(filepath.Base(relPath), ext)

	path := filepath.Join(baseDir, filepath.FromSlash(relPath))
	data, err := os.ReadFile(path) // #nosec G304 -- path is authored book content
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuizRead, err)
	}

	questions, err := defcodec.Decode(ext, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrQuizParse, path, err)
	}

	return &Definition{Name: name, Questions: questions}, nil
}
