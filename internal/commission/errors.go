package commission

import "errors"

var (
	// ErrInvalidPaymentCount rejects any payment write against a deal
	// whose number_of_payments is zero or negative. This is a deal
	// configuration problem and the write must not go through.
	ErrInvalidPaymentCount = errors.New("deal number_of_payments must be a positive integer")
)
