package utils

import "errors"

var (
	ErrEmptyID   = errors.New("must be a non-empty string")
	ErrIDTooLong = errors.New("too long (max 200 characters)")
)
