package pubmed

import (
	"errors"
	"fmt"
)

// ErrRetrieval indicates that a search or fetch request failed as a whole.
// Transport errors, non-success HTTP statuses and body-level API errors all
// wrap it; per-article parse problems do not.
var ErrRetrieval = errors.New("PubMed retrieval failed")

// APIError represents an error reported by the E-utilities service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("PubMed API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("PubMed API error: %s", e.Message)
}

// Unwrap makes every APIError match ErrRetrieval under errors.Is.
func (e *APIError) Unwrap() error {
	return ErrRetrieval
}

// IsRetrieval reports whether err came from a failed outbound request.
func IsRetrieval(err error) bool {
	return errors.Is(err, ErrRetrieval)
}
