package mdquiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Book mirrors mdbook's book structure on the preprocessor protocol.
// Sections nest arbitrarily deep through chapter sub-items.
type Book struct {
	Sections []BookItem `json:"sections"`
}

// MarshalJSON emits the book with mdbook's __non_exhaustive marker so the
// output is accepted back by the host build.
func (b Book) MarshalJSON() ([]byte, error) {
	type wire struct {
		Sections      []BookItem `json:"sections"`
		NonExhaustive *struct{}  `json:"__non_exhaustive"`
	}
	return json.Marshal(wire{Sections: b.Sections})
}

// BookItem is one entry in the book tree: a chapter, a separator, or a part
// title. Exactly one of the fields is set.
type BookItem struct {
	Chapter   *Chapter
	Separator bool
	PartTitle *string
}

// MarshalJSON reproduces mdbook's externally tagged item encoding.
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.Separator:
		return json.Marshal("Separator")
	case it.PartTitle != nil:
		return json.Marshal(map[string]string{"PartTitle": *it.PartTitle})
	}
	return nil, fmt.Errorf("%w: empty item", ErrUnknownBookItem)
}

// UnmarshalJSON accepts mdbook's externally tagged item encoding. Item
// shapes this version does not know are rejected rather than silently
// dropped, so the round trip never loses book content.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != "Separator" {
			return fmt.Errorf("%w: %q", ErrUnknownBookItem, s)
		}
		*it = BookItem{Separator: true}
		return nil
	}

	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	switch {
	case tagged.Chapter != nil:
		*it = BookItem{Chapter: tagged.Chapter}
	case tagged.PartTitle != nil:
		*it = BookItem{PartTitle: tagged.PartTitle}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBookItem, trimmed)
	}
	return nil
}

// Chapter is one authored page: markdown content plus the source path its
// relative references resolve against. Path is nil for draft chapters,
// which have no file on disk.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

// RunContext is the context object mdbook hands a preprocessor alongside
// the book: project root, configuration, and the target renderer.
type RunContext struct {
	Root          string     `json:"root"`
	Config        BookConfig `json:"config"`
	Renderer      string     `json:"renderer"`
	MdbookVersion string     `json:"mdbook_version"`
}

// BookConfig is the slice of mdbook configuration the preprocessor needs:
// the book's source directory and the per-preprocessor options tables.
type BookConfig struct {
	Book         BookSection               `json:"book"`
	Preprocessor map[string]map[string]any `json:"preprocessor"`
}

// BookSection holds the [book] table fields the preprocessor reads.
type BookSection struct {
	Src string `json:"src"`
}

// SrcDir returns the book's source directory, defaulting to mdbook's "src".
func (rc *RunContext) SrcDir() string {
	if rc.Config.Book.Src == "" {
		return "src"
	}
	return rc.Config.Book.Src
}

// Options returns the options table configured for the named preprocessor,
// or nil if none was configured.
func (rc *RunContext) Options(name string) map[string]any {
	return rc.Config.Preprocessor[name]
}
