package loader

import (
	"errors"
	"fmt"
)

// ErrUnknownCollection indicates a request named a collection no loader serves.
var ErrUnknownCollection = errors.New("unknown collection")

// LoadError wraps a failure while loading one collection.
type LoadError struct {
	Collection Collection
	Err        error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load collection %q: %v", e.Collection, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

func wrapLoadError(collection Collection, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Collection: collection, Err: err}
}
