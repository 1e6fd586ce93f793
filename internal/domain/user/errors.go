package user

import "errors"

var (
	ErrUnknownRole     = errors.New("unknown role")
	ErrMissingLocation = errors.New("location is required for this role")
)
