package api

// DefaultErrorMessage is shown when a failure response carries no usable
// message field.
const DefaultErrorMessage = "Request failed"

// Error is a non-2xx response from the backend. Message holds the server's
// own message field when present, DefaultErrorMessage otherwise, so it is
// always safe to show to the user as-is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports whether the server rejected the credentials or token.
func (e *Error) Unauthorized() bool {
	return e.Status == 401
}

func newError(status int, message string) *Error {
	if message == "" {
		message = DefaultErrorMessage
	}
	return &Error{Status: status, Message: message}
}

var _ error = (*Error)(nil)
