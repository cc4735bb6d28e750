package translator

import (
	"fmt"

	"github.com/translatekit/deepl-mcp/internal/deepl"
	"github.com/translatekit/deepl-mcp/internal/errors"
)

// Normalized failure status codes.
const (
	// StatusForbidden is returned for authorization failures on the
	// translation operations.
	StatusForbidden = 403

	// StatusNotFound is returned when a local upload path does not exist.
	StatusNotFound = 404

	// StatusTooManyRequests is returned for rate limiting on the
	// translation operations.
	StatusTooManyRequests = 429

	// StatusQuotaExceeded is DeepL's nonstandard code for an exhausted
	// translation quota.
	StatusQuotaExceeded = 456

	// StatusInternal is the catch-all for every other vendor failure, and
	// for all failures of non-translation operations.
	StatusInternal = 500
)

// APIError is the normalized failure every operation returns. It chains the
// originating vendor error as its cause for diagnostic traceability.
type APIError struct {
	// Status is one of the Status* constants above.
	Status int

	// Message is the vendor failure description.
	Message string

	// Details optionally carries structured failure context.
	Details map[string]any

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("DeepL API error %d: %s", e.Status, e.Message)
}

// Unwrap returns the vendor error this failure was classified from.
func (e *APIError) Unwrap() error {
	return e.cause
}

// newAPIError builds a normalized failure chaining cause.
func newAPIError(status int, message string, cause error) *APIError {
	return &APIError{Status: status, Message: message, cause: cause}
}

// classifyTranslation maps a vendor failure from one of the two translation
// operations to a normalized failure. Only these operations receive the
// fine-grained 403/456/429 distinctions.
func classifyTranslation(err error) *APIError {
	var vendorErr *deepl.Error
	if errors.As(err, &vendorErr) {
		switch vendorErr.Kind {
		case deepl.KindAuthorization:
			return newAPIError(StatusForbidden, vendorErr.Message, err)
		case deepl.KindQuotaExceeded:
			return newAPIError(StatusQuotaExceeded, vendorErr.Message, err)
		case deepl.KindTooManyRequests:
			return newAPIError(StatusTooManyRequests, vendorErr.Message, err)
		}
	}
	return newAPIError(StatusInternal, err.Error(), err)
}

// classify maps a vendor failure from any non-translation operation to a
// normalized failure. All causes collapse to 500: a quota-exceeded failure
// during glossary creation surfaces as 500, matching the documented
// asymmetry of the contract.
func classify(err error) *APIError {
	var vendorErr *deepl.Error
	if errors.As(err, &vendorErr) {
		return newAPIError(StatusInternal, vendorErr.Message, err)
	}
	return newAPIError(StatusInternal, err.Error(), err)
}
