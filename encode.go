package mdquiz

import (
	"encoding/json"
	"fmt"
)

// EncodeQuestions converts a loaded definition value into the JSON blob
// embedded in the placeholder's data-quiz-questions attribute. The encoding
// is lossless for all definition-native types: decoding the result yields an
// equivalent structure with no truncation of nesting.
func EncodeQuestions(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrQuizEncode, err)
	}
	return string(data), nil
}
