package deepl

import "fmt"

// Kind identifies the cause category of an API failure. It is a closed set:
// the HTTP boundary translates vendor responses into exactly one of these
// variants, and callers classify failures by matching on it.
type Kind int

const (
	// KindServer covers any vendor-reported failure without a more
	// specific category, including 5xx responses.
	KindServer Kind = iota

	// KindAuthorization indicates an authentication or authorization
	// failure (HTTP 401/403).
	KindAuthorization

	// KindQuotaExceeded indicates the account translation quota is
	// exhausted (HTTP 456).
	KindQuotaExceeded

	// KindTooManyRequests indicates request rate limiting (HTTP 429).
	KindTooManyRequests

	// KindNotFound indicates the requested remote resource does not exist
	// (HTTP 404), e.g. an unknown glossary or document id.
	KindNotFound

	// KindBadRequest indicates the vendor rejected the request parameters
	// (HTTP 400/413/414).
	KindBadRequest

	// KindNetwork indicates the request never produced an HTTP response
	// (DNS failure, connection refused, context cancellation).
	KindNetwork
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindTooManyRequests:
		return "too_many_requests"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindNetwork:
		return "network"
	default:
		return "server"
	}
}

// Error is the failure type returned by every Client method.
type Error struct {
	// Kind is the cause category.
	Kind Kind

	// StatusCode is the HTTP status of the vendor response, or 0 when the
	// request never produced one.
	StatusCode int

	// Message is the vendor-supplied (or transport) failure description.
	Message string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("deepl: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("deepl: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
}

// Unwrap returns the underlying transport error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// kindFromStatus maps an HTTP status code to a failure kind.
func kindFromStatus(code int) Kind {
	switch code {
	case 401, 403:
		return KindAuthorization
	case 404:
		return KindNotFound
	case 400, 413, 414:
		return KindBadRequest
	case 429:
		return KindTooManyRequests
	case 456:
		return KindQuotaExceeded
	default:
		return KindServer
	}
}
