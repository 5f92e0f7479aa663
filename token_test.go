package mdquiz

import (
	"testing"
)

func TestTokenizeSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty document",
			input: "",
		},
		{
			name:  "single line no newline",
			input: "# Heading",
		},
		{
			name:  "trailing newline",
			input: "# Heading\n",
		},
		{
			name:  "mixed structure",
			input: "# Title\n\nSome *emphasis* and a list:\n\n- one\n- two\n\n> quote\n",
		},
		{
			name:  "fenced code block",
			input: "before\n\n```rust\nlet x = 1;\n```\n\nafter",
		},
		{
			name:  "indented code block",
			input: "before\n\n    indented code\n\tmore code\n\nafter",
		},
		{
			name:  "windows-style blank lines preserved",
			input: "a\n\n\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Serialize(Tokenize(tt.input))
			if got != tt.input {
				t.Errorf("round trip = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestTokenizeClassification(t *testing.T) {
	t.Parallel()

	input := "prose\n\n```\n{{#quiz inside-fence.toml}}\n```\n    {{#quiz indented.toml}}\n~~~\n{{#quiz tilde-fence.toml}}\n~~~"
	tokens := Tokenize(input)

	wantKinds := []TokenKind{
		TokenText,  // prose
		TokenBlank, //
		TokenFence, // ```
		TokenCode,  // {{#quiz inside-fence.toml}}
		TokenFence, // ```
		TokenCode,  //     {{#quiz indented.toml}}
		TokenFence, // ~~~
		TokenCode,  // {{#quiz tilde-fence.toml}}
		TokenFence, // ~~~
	}

	if len(tokens) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantKinds))
	}
	for i, want := range wantKinds {
		if tokens[i].Kind != want {
			t.Errorf("token %d (%q) kind = %v, want %v", i, tokens[i].Text, tokens[i].Kind, want)
		}
	}
}

func TestTokenizeDirectiveLineIsText(t *testing.T) {
	t.Parallel()

	tokens := Tokenize("intro\n{{#quiz q.toml}}\noutro")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	if tokens[1].Kind != TokenText {
		t.Errorf("directive line kind = %v, want TokenText", tokens[1].Kind)
	}
	if _, ok := MatchDirective(tokens[1].Text); !ok {
		t.Errorf("directive line %q should match", tokens[1].Text)
	}
}
