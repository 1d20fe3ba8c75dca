package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrDealNotFound    = errors.New("deal not found")
	ErrPaymentReceived = errors.New("payment already marked received")
	ErrNegativeAmount  = errors.New("payment amount must not be negative")
)
