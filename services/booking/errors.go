package booking

import "fmt"

// BookingError carries the error taxonomy surfaced to the HTTP layer.
// Persistence failures never become a BookingError; they are logged and
// swallowed at the source.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeValidation = "validationError"
	CodeDispatch   = "dispatchError"
)

// NewValidationError reports a client-correctable request problem. No side
// effects have been performed when one is returned.
func NewValidationError(msg string) error {
	return &BookingError{
		Code:    CodeValidation,
		Message: msg,
	}
}

// NewDispatchError reports a failed email dispatch. The transport error is
// logged server-side; only the generic message reaches the client.
func NewDispatchError(msg string) error {
	return &BookingError{
		Code:    CodeDispatch,
		Message: msg,
	}
}
