package formatters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Completer sends one prompt to a text-generation backend and returns the raw
// reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNoJSONObject is returned when a reply contains no {...} span.
var ErrNoJSONObject = errors.New("no JSON object in model output")

// ExtractJSONObject returns the JSON object embedded in a model reply. Code
// fences are stripped first; if the remainder is not a bare object, the span
// from the first '{' to the last '}' is used.
func ExtractJSONObject(s string) (string, error) {
	s = cleanJSONBlock(s)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s, nil
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}

// DecodeObject extracts the JSON object from s and unmarshals it into v.
func DecodeObject(s string, v interface{}) error {
	obj, err := ExtractJSONObject(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("ai output is not valid json: %w", err)
	}
	return nil
}

func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func mustMarshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
