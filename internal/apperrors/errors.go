package apperrors

import (
	"encoding/json"
)

// InvalidInputErr signals a missing or malformed field in the request payload.
// It is always raised before any storage access happens.
type InvalidInputErr struct {
	field   string
	message string
}

func (e *InvalidInputErr) Error() string {
	return e.message
}

func (e *InvalidInputErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}{Field: e.field, Message: e.message})
}

func NewInvalidInputErr(field string, msg string) *InvalidInputErr {
	return &InvalidInputErr{
		field:   field,
		message: msg,
	}
}

// NotFoundErr signals that an identifier did not resolve to an existing record.
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

func NewNotFoundErr(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}
