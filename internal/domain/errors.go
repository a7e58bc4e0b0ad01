package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record with the given id does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoFieldsToUpdate is returned when a partial update carries no known field
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrFetchFailed is returned when a product page could not be loaded
	ErrFetchFailed = errors.New("page could not be loaded")

	// ErrMalformedStructuredData marks a JSON-LD block that is not valid JSON.
	// It never leaves the extractor.
	ErrMalformedStructuredData = errors.New("malformed structured data")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrStoreUnavailable is returned when the database cannot be reached
	ErrStoreUnavailable = errors.New("database unavailable")
)

// FetchError describes a failed product page fetch
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: status %d", ErrFetchFailed, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailed, e.URL, e.Err)
}

// Unwrap makes errors.Is(err, ErrFetchFailed) hold for every FetchError
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}
	return []error{ErrFetchFailed, e.Err}
}
