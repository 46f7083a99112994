package utils

import (
	"fmt"
	"strings"
)

// maxIDLength bounds path parameters before they reach the backend.
const maxIDLength = 200

// ValidationError is a 400-class failure for a named path parameter.
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
}

// ValidateID checks a path parameter: non-empty after trimming and within
// length bounds. Format is deliberately not checked beyond that; the backend
// owns the ID alphabet. Returns the trimmed value.
func ValidateID(id, paramName string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", &ValidationError{Param: paramName, Message: ErrEmptyID.Error()}
	}
	if len(id) > maxIDLength {
		return "", &ValidationError{Param: paramName, Message: ErrIDTooLong.Error()}
	}
	return trimmed, nil
}
