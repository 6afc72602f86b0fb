package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Presence checks and the login gate answer with fixed messages the front end matches on.
var (
	MissingBookingFields  = &Failure{Code: http.StatusBadRequest, Message: "Missing required fields."}
	MissingCleaningFields = &Failure{Code: http.StatusBadRequest, Message: "Room ID and status are required"}
	MissingCredentials    = &Failure{Code: http.StatusBadRequest, Message: "Username and password are required"}
	InvalidCredentials    = &Failure{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for a missing booking or room.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure for writes that collide with an existing row.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsCode reports whether err carries the given HTTP code.
func IsCode(err error, code int) bool {
	var fail *Failure
	return errors.As(err, &fail) && fail.Code == code
}
