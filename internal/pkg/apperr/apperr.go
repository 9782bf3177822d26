package apperr

import (
	"fmt"
	"net/http"
)

type Code int

const (
	InternalCode Code = iota + 1
	NotFoundCode
	ValidationCode
	UnauthenticatedCode
	ForbiddenCode
	ConflictCode
)

var ErrStrMap = map[Code]string{
	InternalCode:        "internal server error",
	NotFoundCode:        "resource not found",
	ValidationCode:      "invalid request",
	UnauthenticatedCode: "unauthenticated",
	ForbiddenCode:       "forbidden",
	ConflictCode:        "conflict",
}

// HTTPStatusMap error code 對應 http status
var HTTPStatusMap = map[Code]int{
	InternalCode:        http.StatusInternalServerError,
	NotFoundCode:        http.StatusNotFound,
	ValidationCode:      http.StatusBadRequest,
	UnauthenticatedCode: http.StatusUnauthorized,
	ForbiddenCode:       http.StatusForbidden,
	ConflictCode:        http.StatusConflict,
}

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("code: %d, message: %s, err: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// HTTPStatus 未知code一律當作internal
func HTTPStatus(code Code) int {
	if status, ok := HTTPStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
