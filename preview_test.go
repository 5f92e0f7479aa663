package mdquiz

import (
	"context"
	"strings"
	"testing"
)

func TestPreviewHTML(t *testing.T) {
	t.Parallel()

	content := "# Title\n\n" + BuildPlaceholder("geo", `{"name":"Capitals"}`, Config{}) + "\n\nprose\n"

	got, err := PreviewHTML(context.Background(), content)
	if err != nil {
		t.Fatalf("PreviewHTML() error = %v", err)
	}

	if !strings.Contains(got, "<h1") {
		t.Errorf("heading not rendered: %q", got)
	}
	// The placeholder element must survive markdown-to-HTML conversion.
	if !strings.Contains(got, `class="quiz-placeholder"`) {
		t.Errorf("placeholder stripped from output: %q", got)
	}
	if !strings.Contains(got, `data-quiz-name="geo"`) {
		t.Errorf("placeholder attributes lost: %q", got)
	}
}

func TestPreviewHTMLHighlighting(t *testing.T) {
	t.Parallel()

	got, err := PreviewHTML(context.Background(), "```go\npackage main\n```\n")
	if err != nil {
		t.Fatalf("PreviewHTML() error = %v", err)
	}
	if !strings.Contains(got, "<pre") {
		t.Errorf("code block not rendered: %q", got)
	}
}

func TestPreviewHTMLCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := PreviewHTML(ctx, "# Title"); err != context.Canceled {
		t.Errorf("PreviewHTML() error = %v, want context.Canceled", err)
	}
}
