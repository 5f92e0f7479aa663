package mdquiz

import (
	"regexp"
	"strings"
)

// Precompiled patterns for token classification.
var (
	// Fenced code block delimiter (backticks or tildes)
	fencedCodeBlock = regexp.MustCompile("^(```|~~~)")

	// Indented code block (4 spaces or tab)
	indentedCodeBlock = regexp.MustCompile(`^(    |\t)`)
)

// TokenKind classifies one line of a chapter.
type TokenKind int

const (
	// TokenText is a prose line, the only kind eligible for directive expansion.
	TokenText TokenKind = iota

	// TokenBlank is an empty or whitespace-only line.
	TokenBlank

	// TokenFence is a fenced code block delimiter (``` or ~~~).
	TokenFence

	// TokenCode is a line inside a fenced code block or an indented code block.
	TokenCode

	// TokenHTML is a raw markup insertion produced by the rewriter.
	TokenHTML
)

// Token is one line of a chapter. Text holds the exact source line without
// its trailing newline, so Serialize(Tokenize(s)) == s for any input s.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits content into line tokens. Lines inside fenced or indented
// code blocks are classified as code so directive expansion never touches
// code samples.
func Tokenize(content string) []Token {
	lines := strings.Split(content, "\n")
	tokens := make([]Token, 0, len(lines))

	inFence := false
	for _, line := range lines {
		switch {
		case fencedCodeBlock.MatchString(line):
			inFence = !inFence
			tokens = append(tokens, Token{Kind: TokenFence, Text: line})
		case inFence || indentedCodeBlock.MatchString(line):
			tokens = append(tokens, Token{Kind: TokenCode, Text: line})
		case strings.TrimSpace(line) == "":
			tokens = append(tokens, Token{Kind: TokenBlank, Text: line})
		default:
			tokens = append(tokens, Token{Kind: TokenText, Text: line})
		}
	}
	return tokens
}

// Serialize joins tokens back into chapter text. Exact inverse of Tokenize:
// a token stream with no substitutions reproduces the input byte for byte.
func Serialize(tokens []Token) string {
	lines := make([]string, len(tokens))
	for i, tok := range tokens {
		lines[i] = tok.Text
	}
	return strings.Join(lines, "\n")
}
