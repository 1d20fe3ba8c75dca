// Package commission holds the pure calculation core of the payment
// engine: scheduled-amount and AGCI derivation for a single payment,
// and the per-broker category split waterfall. Everything here is a
// function over decimal values with no storage or transport concerns;
// the payment service wires these into its write transactions.
package commission

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealTerms is the read-only slice of a deal the calculators consume.
type DealTerms struct {
	Fee              decimal.Decimal
	NumberOfPayments int
	AGCI             decimal.Decimal

	// Independent category weights (0–100). They are not required to
	// sum to 100.
	OriginationPercent decimal.Decimal
	SitePercent        decimal.Decimal
	DealPercent        decimal.Decimal

	ReferralFeePercent decimal.Decimal
}

// PaymentInput carries the mutable payment fields a write is about to
// persist.
type PaymentInput struct {
	Amount         decimal.Decimal
	AmountOverride bool

	// When set, takes precedence over DealTerms.ReferralFeePercent.
	ReferralFeePercentOverride *decimal.Decimal
}

// PaymentFields is the corrected row produced by ComputePaymentFields.
type PaymentFields struct {
	Amount         decimal.Decimal
	AGCI           decimal.Decimal
	ReferralFeeUSD decimal.Decimal
}

// SplitInput is one broker's percentage interest on a payment, straight
// from the deal's broker roster.
type SplitInput struct {
	BrokerID uuid.UUID

	OriginationPercent decimal.Decimal
	SitePercent        decimal.Decimal
	DealPercent        decimal.Decimal
}

// SplitRow is the derived dollar breakdown for one broker. BrokerTotal
// is always the exact sum of the three category amounts.
type SplitRow struct {
	BrokerID uuid.UUID

	OriginationUSD decimal.Decimal
	SiteUSD        decimal.Decimal
	DealUSD        decimal.Decimal
	BrokerTotal    decimal.Decimal
}

// CategoryPools are the deal-weighted dollar pools a payment's AGCI is
// divided into before broker percentages apply.
type CategoryPools struct {
	Origination decimal.Decimal
	Site        decimal.Decimal
	Deal        decimal.Decimal
}
