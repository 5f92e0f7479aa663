package mdquiz

import (
	"regexp"
	"strings"
)

// quizDirective matches a text token that is exactly one quiz directive:
// {{#quiz <path>}}. The path may not contain '}'. Anchored to the whole
// token, so directives embedded in surrounding prose never match.
var quizDirective = regexp.MustCompile(`^\{\{#quiz ([^}]+)\}\}$`)

// MatchDirective reports whether text is a quiz directive and returns the
// referenced definition path. The path may be wrapped in one pair of double
// quotes, which are stripped. Pure and total: any string is valid input.
func MatchDirective(text string) (string, bool) {
	m := quizDirective.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	arg := m[1]
	if len(arg) >= 2 && strings.HasPrefix(arg, `"`) && strings.HasSuffix(arg, `"`) {
		arg = arg[1 : len(arg)-1]
	}
	return arg, true
}
