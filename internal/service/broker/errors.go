package broker

import "errors"

var (
	ErrBrokerNotFound = errors.New("broker not found")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrBrokerInactive = errors.New("broker is inactive")
)
