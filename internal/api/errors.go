package api

import (
	"fmt"
)

// ListingError is the error type for remote listing failures
type ListingError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *ListingError) Error() string {
	return fmt.Sprintf("listing %s failed with status %d", e.URL, e.StatusCode)
}

// NewListingFailedError creates a new error for non-200 listing responses
func NewListingFailedError(url string, statusCode int) error {
	return &ListingError{
		URL:        url,
		StatusCode: statusCode,
	}
}
