package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number for the specified region")
	ErrEmailAlreadyExists = errors.New("email address is already in use")
	ErrInvalidRole        = errors.New("unknown user role")
)
