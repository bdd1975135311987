package errs

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrDuplicateReview = errors.New("review already exists for this book")
	ErrUserExists      = errors.New("user already exists")
)
