package api

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound indicates the provider returned no usable candidate for
// a city lookup. A single attempt is made per call; retrying is the caller's
// decision on a later invocation.
var ErrLocationNotFound = errors.New("location not found")

// FetchError wraps a failed page download (timeout, connection error or
// non-2xx status). It never escapes past the weather use case, which converts
// it to an error snapshot.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s failed with status %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
