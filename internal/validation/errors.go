package validation

import (
	"errors"
	"sort"
	"strings"
)

// ValidationError carries one human-readable message per violated field
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = msg
}

func (e *ValidationError) empty() bool {
	return e == nil || len(e.Fields) == 0
}

// AsValidationError unwraps err into a *ValidationError when it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FieldError builds a ValidationError for a single field
func FieldError(field, msg string) *ValidationError {
	ve := &ValidationError{}
	ve.add(field, msg)
	return ve
}
