package apperror

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound     = NewAppError("not found")
	ErrUnauthorized = NewAppError("unauthorized")
	ErrDecodeBody   = NewAppError("failed to decode request body")
	ErrInvalidID    = NewAppError("id should be positive integer")
)

type AppError struct {
	Message      string `json:"message"`
	notFound     bool
	unauthorized bool
}

func NewAppError(message string) *AppError {
	return &AppError{
		Message: message,
	}
}

// NewNotFoundErr builds a 404 error carrying its own message,
// e.g. "brand not found" for a missing parent.
func NewNotFoundErr(message string) *AppError {
	return &AppError{
		Message:  message,
		notFound: true,
	}
}

func NewUnauthorizedErr(message string) *AppError {
	return &AppError{
		Message:      message,
		unauthorized: true,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) IsNotFound() bool {
	return e.notFound || e == ErrNotFound
}

func (e *AppError) IsUnauthorized() bool {
	return e.unauthorized || e == ErrUnauthorized
}

func (e *AppError) Marshal() []byte {
	marshal, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return marshal
}

func NewValidationErr(errs validator.ValidationErrors) *AppError {
	var missing, errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			missing = append(missing, err.Field())
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not a valid email", err.Field()))
		case "min":
			if err.Kind() == reflect.String {
				errMsgs = append(errMsgs, fmt.Sprintf("field %s should not be empty", err.Field()))
				continue
			}
			errMsgs = append(errMsgs, fmt.Sprintf("the minimum value of the %s field is %s", err.Field(), err.Param()))
		case "gt":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s should be greater than %s", err.Field(), err.Param()))
		case "max":
			errMsgs = append(errMsgs, fmt.Sprintf("the maximum length of the %s field is %s characters", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	if len(missing) > 0 {
		errMsgs = append([]string{"missing required fields: " + strings.Join(missing, ", ")}, errMsgs...)
	}

	return NewAppError(strings.Join(errMsgs, ", "))
}

func NewBodyTooLargeErr(limit int64) *AppError {
	return NewAppError(fmt.Sprintf("Request body exceeds the %dMB limit", limit>>20))
}

func internalError() *AppError {
	return NewAppError("internal error")
}
