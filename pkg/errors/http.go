package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be served with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    map[string]any
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: msg}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithDetail returns a copy of e with a key/value pair rendered in the
// response data. e itself is left untouched, so the shared errors below can
// be decorated per request.
func (e *HTTPError) WithDetail(key string, value any) *HTTPError {
	out := &HTTPError{
		StatusCode: e.StatusCode,
		Message:    e.Message,
		Details:    make(map[string]any, len(e.Details)+1),
	}
	for k, v := range e.Details {
		out.Details[k] = v
	}
	out.Details[key] = value
	return out
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad Request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
)
