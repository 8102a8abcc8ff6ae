package apierror

import "net/http"

type (
	// An Error represents the error format that can be rendered by the API.
	Error struct {
		HTTPCode   int `json:"-"`
		FieldError err `json:"error"`
	}

	err struct {
		Tag     string `json:"tag,omitempty"`
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
	}
)

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if apierr, ok := err.(*Error); ok {
		return apierr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new Error with the given message.
func New(message string) *Error {
	return &Error{FieldError: err{Message: message}}
}

// NewWithTagCode returns a new Error with the given code, tag and message.
func NewWithTagCode(code int, tag, message string) *Error {
	return &Error{HTTPCode: code, FieldError: err{Tag: tag, Message: message}}
}

// Unauthorized returns the structured error rendered by failed session gates.
func Unauthorized() *Error {
	return NewWithTagCode(http.StatusUnauthorized, "unauthorized", "unauthorized")
}

// NotFound returns the structured error rendered for unresolvable records.
func NotFound(message string) *Error {
	return NewWithTagCode(http.StatusNotFound, "not-found", message)
}

// Validation returns the structured error identifying the offending field.
func Validation(field, message string) *Error {
	return &Error{
		HTTPCode:   http.StatusBadRequest,
		FieldError: err{Tag: "validation", Field: field, Message: message},
	}
}

// Error implements error interface.
func (e *Error) Error() string {
	return e.FieldError.Message
}
