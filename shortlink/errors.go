package shortlink

import "fmt"

// NotFoundError marks a 404 from the link backend: the token is unknown,
// expired, or already used. Callers render "link unavailable" instead of a
// retryable error.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "resource not found"
	}
	return e.Message
}

// APIError is any other non-2xx backend response, with the message extracted
// from the {error, message} body when the body was parseable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API request failed with status %d", e.Status)
	}
	return e.Message
}
