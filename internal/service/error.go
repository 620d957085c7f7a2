package service

import "errors"

var (
	ErrDuplicateEmail = errors.New("DUPLICATE_USER")
	ErrUserNotFound   = errors.New("USER_NOT_FOUND")
	ErrCursorNotFound = errors.New("CURSOR_NOT_FOUND")
	ErrRateLimited    = errors.New("RATE_LIMITED")
	ErrDatabase       = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
