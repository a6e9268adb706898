package pkg

import (
	"fmt"
	"net/http"
)

type ErrType int

type AppError struct {
	HttpStatus int
	Code       ErrType
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

const (
	ErrInternal ErrType = iota + 1001
	ErrValidation
	ErrAuthException
	ErrStoreUnavailable
)

const (
	ErrInvalidId ErrType = iota + 2001
	ErrMissingField
	ErrNotFound
	ErrInvalidPagination
	ErrConflict
	ErrAccountExisted
	ErrSignFailed
)

var errTypeMap = map[ErrType]AppError{
	ErrInternal: {
		HttpStatus: http.StatusInternalServerError,
		Code:       ErrInternal,
		Message:    "internal server error",
	},
	ErrValidation: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrValidation,
		Message:    "invalid request parameters",
	},
	ErrAuthException: {
		HttpStatus: http.StatusUnauthorized,
		Code:       ErrAuthException,
		Message:    "unauthorized request",
	},
	ErrStoreUnavailable: {
		HttpStatus: http.StatusInternalServerError,
		Code:       ErrStoreUnavailable,
		Message:    "storage is temporarily unavailable",
	},

	ErrInvalidId: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrInvalidId,
		Message:    "invalid identifier format",
	},
	ErrMissingField: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrMissingField,
		Message:    "required field is missing",
	},
	ErrNotFound: {
		HttpStatus: http.StatusNotFound,
		Code:       ErrNotFound,
		Message:    "resource not found",
	},
	ErrInvalidPagination: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrInvalidPagination,
		Message:    "page and limit must be positive numbers",
	},
	ErrConflict: {
		HttpStatus: http.StatusConflict,
		Code:       ErrConflict,
		Message:    "write conflicted with a concurrent update, please retry",
	},
	ErrAccountExisted: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrAccountExisted,
		Message:    "username or email already exists",
	},
	ErrSignFailed: {
		HttpStatus: http.StatusBadRequest,
		Code:       ErrSignFailed,
		Message:    "incorrect username or password",
	},
}

func NewError(errType ErrType, detail error) *AppError {
	appErr, ok := errTypeMap[errType]
	if !ok {
		appErr = errTypeMap[ErrInternal]
	}

	appErr.Err = detail
	return &appErr
}

// NewMsgError keeps the status mapping of errType but reports a
// caller-specific message, e.g. "Video not found".
func NewMsgError(errType ErrType, msg string, detail error) *AppError {
	appErr := NewError(errType, detail)
	appErr.Message = msg
	return appErr
}
