package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrEmptySysID is returned by the detail relay for blank identifiers.
var ErrEmptySysID = stderrors.New("sysId must not be empty")

// As is errors.As, re-exported so callers of this package need not alias
// the standard library.
func As(err error, target any) bool { return stderrors.As(err, target) }

// NewValidationError wraps a local validation failure.
func NewValidationError(operation string, err error) *RelayError {
	return &RelayError{Kind: Validation, Operation: operation, Underlying: err}
}

// NewNetworkError creates an error for failures before any response arrived.
func NewNetworkError(operation string, err error) *RelayError {
	return &RelayError{Kind: Transport, Operation: operation, Underlying: err}
}

// NewHTTPError creates an error for a non-2xx response. 4xx and 5xx are
// treated alike.
func NewHTTPError(operation string, statusCode int, body string) *RelayError {
	status := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	if http.StatusText(statusCode) == "" {
		status = fmt.Sprintf("%d", statusCode)
	}
	return &RelayError{
		Kind:       Status,
		Operation:  operation,
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewDecodeError creates an error for a 2xx body that is not JSON.
func NewDecodeError(operation string, err error) *RelayError {
	return &RelayError{Kind: Decode, Operation: operation, Underlying: err}
}
