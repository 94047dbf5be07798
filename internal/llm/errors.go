package llm

import (
	"errors"
	"fmt"
)

var (
	ErrNoCredential    = errors.New("no model credential configured")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrSchemaViolation = errors.New("response does not match output schema")
)

// ModelError reports a failed model invocation
type ModelError struct {
	Op  string
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model %s: %v", e.Op, e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }

// AsModelError unwraps err into a *ModelError when it is one
func AsModelError(err error) (*ModelError, bool) {
	var me *ModelError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}
