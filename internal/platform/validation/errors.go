package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error carries the per-field messages of a failed validation.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Check validates s and returns an *Error when any rule fails.
func Check(v Validator, s any) error {
	if errs := v.ValidateStruct(s); len(errs) > 0 {
		return &Error{Fields: errs}
	}
	return nil
}
