package search

import (
	"fmt"
	"strings"
)

// ValidationError flags one offending search field so the caller can
// highlight each field individually.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields returns per-field validity, false meaning invalid.
func (v ValidationErrors) Fields() map[string]bool {
	out := make(map[string]bool, len(v))
	for _, err := range v {
		out[err.Field] = false
	}
	return out
}
