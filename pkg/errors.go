package pkg

import "fmt"

// AppError carries a stable error code, a human-readable message and the
// HTTP status the adapters should answer with.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON error body. Every error response carries a
// human-readable mensaje.

type HTTPError struct {
	Codigo  string `json:"codigo,omitempty"`
	Mensaje string `json:"mensaje"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Codigo: e.Code, Mensaje: e.Message}
}
