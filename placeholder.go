package mdquiz

import (
	"html"
	"strings"
)

// placeholderClass is the CSS hook the client-side quiz renderer looks for.
const placeholderClass = "quiz-placeholder"

// attrWriter accumulates escaped data attributes for one placeholder
// element. A plain local accumulator with scoped lifetime.
type attrWriter struct {
	sb strings.Builder
}

// addData appends one data attribute. The value is escaped so it cannot
// break out of a double-quoted attribute context.
func (w *attrWriter) addData(key, value string) {
	w.sb.WriteString(` data-`)
	w.sb.WriteString(key)
	w.sb.WriteString(`="`)
	w.sb.WriteString(html.EscapeString(value))
	w.sb.WriteString(`" `)
}

// BuildPlaceholder assembles the markup fragment that replaces one quiz
// directive: a div carrying the quiz name, its JSON-encoded questions, and
// any configured options as data attributes. Pure construction, no side
// effects.
func BuildPlaceholder(name, questionsJSON string, cfg Config) string {
	var w attrWriter
	w.sb.WriteString(`<div class="` + placeholderClass + `"`)

	w.addData("quiz-name", name)
	w.addData("quiz-questions", questionsJSON)
	if cfg.LogEndpoint != nil {
		w.addData("quiz-log-endpoint", *cfg.LogEndpoint)
	}
	if cfg.Fullscreen != nil {
		w.addData("quiz-fullscreen", "")
	}

	w.sb.WriteString(`></div>`)
	return w.sb.String()
}
