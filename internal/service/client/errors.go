package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientHasDeals = errors.New("client still has live deals")
	ErrInvalidEmail   = errors.New("invalid email address")
)
