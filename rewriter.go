package mdquiz

import "fmt"

// RewriteChapter expands every quiz directive in content. chapterPath is
// the chapter's source path, used in error messages; chapterDir is the
// directory definition paths resolve against.
//
// Each text token is checked against the directive pattern; matches are
// replaced by a raw markup token wrapping the placeholder, everything else
// passes through unchanged in order. Any load or encode failure aborts the
// whole chapter rewrite: no partial output.
func RewriteChapter(content, chapterPath, chapterDir string, cfg Config) (string, error) {
	tokens := Tokenize(content)

	for i, tok := range tokens {
		if tok.Kind != TokenText {
			continue
		}
		arg, ok := MatchDirective(tok.Text)
		if !ok {
			continue
		}

		def, err := LoadDefinition(chapterDir, arg)
		if err != nil {
			return "", fmt.Errorf("expanding {{#quiz %s}} in %s: %w", arg, chapterPath, err)
		}
		questions, err := EncodeQuestions(def.Questions)
		if err != nil {
			return "", fmt.Errorf("expanding {{#quiz %s}} in %s: %w", arg, chapterPath, err)
		}

		tokens[i] = Token{Kind: TokenHTML, Text: BuildPlaceholder(def.Name, questions, cfg)}
	}

	return Serialize(tokens), nil
}
