package deal

import "errors"

var (
	ErrDealNotFound    = errors.New("deal not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrBrokerNotFound  = errors.New("broker not found")
	ErrInvalidStage    = errors.New("unknown deal stage")
	ErrInvalidPercent  = errors.New("percent values must be between 0 and 100")
	ErrInvalidSchedule = errors.New("number_of_payments must be a positive integer")
)
