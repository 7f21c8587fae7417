package wordpress

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid wordpress configuration")
	// ErrNoConnection indicates connection failure
	ErrNoConnection = errors.New("failed to connect to wordpress")
	// ErrUnauthorized indicates authentication failure
	ErrUnauthorized = errors.New("unauthorized: invalid or missing credentials")
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
)

// APIError represents a WordPress REST API error response
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("wordpress API error: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("wordpress API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses onto the package sentinel errors so callers
// can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// restError is the error envelope WordPress returns on failures:
// {"code":"rest_post_invalid_id","message":"Invalid post ID.","data":{"status":404}}
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
	} `json:"data"`
}

// parseAPIError builds an APIError from a non-2xx response body.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var re restError
	if err := json.Unmarshal(body, &re); err == nil && re.Code != "" {
		apiErr.Code = re.Code
		apiErr.Message = re.Message
	} else {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}
