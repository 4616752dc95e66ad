package apperrors

import "errors"

// Submission pipeline errors
var (
	// ErrNotConfigured means the destination webhook for a form is not set.
	ErrNotConfigured = errors.New("destination not configured")
	// ErrMalformedRequest means the body is not a JSON object.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrValidationFailed means one or more required fields are missing.
	ErrValidationFailed = errors.New("validation failed")
	// ErrUpstreamUnreachable means the webhook could not be reached.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	// ErrUpstreamRejected means the webhook answered with a non-2xx status.
	ErrUpstreamRejected = errors.New("upstream rejected submission")
)

// NewConfigurationError creates a custom error for a missing destination
func NewConfigurationError(message string) error {
	return &CustomError{
		Err:     ErrNotConfigured,
		Message: message,
	}
}

// NewMalformedRequestError creates a custom error for an unparsable body
func NewMalformedRequestError(message string) error {
	return &CustomError{
		Err:     ErrMalformedRequest,
		Message: message,
	}
}

// NewValidationError creates a custom error listing the missing fields in Details
func NewValidationError(message string, fields []string) error {
	return (&CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}).WithDetails(map[string]interface{}{"fields": fields})
}

// NewUpstreamUnreachableError wraps a transport failure
func NewUpstreamUnreachableError(message string, cause error) error {
	return &CustomError{
		Err:     ErrUpstreamUnreachable,
		Message: message,
		Cause:   cause,
	}
}

// NewUpstreamRejectedError wraps a non-2xx webhook response
func NewUpstreamRejectedError(message string, cause error) error {
	return &CustomError{
		Err:     ErrUpstreamRejected,
		Message: message,
		Cause:   cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context.
// Message is safe to show to callers; Cause is for logs only.
type CustomError struct {
	Err     error
	Message string
	Code    string
	Cause   error
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As
func (e *CustomError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Err != nil {
		out = append(out, e.Err)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// PublicMessage returns the caller-safe message of err, or fallback when err
// carries none.
func PublicMessage(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
