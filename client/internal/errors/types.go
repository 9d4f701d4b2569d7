// Package errors classifies relay failures so callers can tell a rejected
// identifier from a network outage or an upstream rejection.
package errors

import "fmt"

// Kind is the failure class of a relay call.
type Kind int

const (
	// Validation errors are raised before any request is sent.
	Validation Kind = iota

	// Transport errors cover DNS, connection, TLS and timeout failures.
	Transport

	// Status errors mean the gazetteer answered with a non-2xx status.
	Status

	// Decode errors mean a 2xx body was not valid JSON.
	Decode
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Transport:
		return "transport"
	case Status:
		return "status"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Operation labels used in status error prefixes.
const (
	OpSearch = "search_placenames"
	OpDetail = "get_placename"
)

// UnreadableBody replaces the body text when reading a failed response fails.
const UnreadableBody = "<unable to read response body>"

// RelayError is the single error type returned by the relay operations.
// Its Error() text is what hosts show to the end user.
type RelayError struct {
	Kind       Kind
	Operation  string
	StatusCode int    // 0 unless Kind == Status
	Status     string // e.g. "404 Not Found"
	Body       string // response body text for Status errors
	Underlying error
}

// Error implements the error interface.
func (e *RelayError) Error() string {
	switch e.Kind {
	case Validation:
		return e.Underlying.Error()
	case Transport:
		return fmt.Sprintf("network request failed: %v", e.Underlying)
	case Status:
		return fmt.Sprintf("%s (%s): %s", statusPrefix(e.Operation), e.Status, e.Body)
	case Decode:
		return fmt.Sprintf("failed to parse response: %v", e.Underlying)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *RelayError) Unwrap() error {
	return e.Underlying
}

func statusPrefix(op string) string {
	if op == OpDetail {
		return "detail fetch failed"
	}
	return "query failed"
}

// KindOf reports the kind of a relay error. ok is false for any other error.
func KindOf(err error) (Kind, bool) {
	var re *RelayError
	if As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
