package commission

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// ComputePaymentFields derives the persisted money fields for a single
// payment row from its owning deal's terms. It runs on every payment
// insert and update, before the row is written, so a reader never sees
// a payment whose amount, AGCI, or referral fee is stale.
//
// Rules:
//   - scheduled = fee / number_of_payments
//   - amount = scheduled unless the row carries a manual override
//   - agci tracks the fraction of the scheduled cash this payment
//     actually represents: agci = (amount/scheduled) * (deal.agci/n)
//   - referral fee is recomputed unconditionally from the effective
//     percent and the current amount
func ComputePaymentFields(deal DealTerms, p PaymentInput) (PaymentFields, error) {
	if deal.NumberOfPayments <= 0 {
		return PaymentFields{}, ErrInvalidPaymentCount
	}
	n := decimal.NewFromInt(int64(deal.NumberOfPayments))

	scheduled := deal.Fee.Div(n)

	amount := p.Amount
	if !p.AmountOverride {
		amount = scheduled
	}

	agciShare := deal.AGCI.Div(n)

	var agci decimal.Decimal
	if scheduled.IsPositive() {
		// Scale by the fraction of the scheduled amount actually being
		// recorded. 1.0 in the non-override case.
		agci = amount.Div(scheduled).Mul(agciShare)
	} else {
		// Zero or negative scheduled amount: the ratio is undefined,
		// fall back to the plain per-payment share.
		agci = agciShare
	}

	refPercent := deal.ReferralFeePercent
	if p.ReferralFeePercentOverride != nil {
		refPercent = *p.ReferralFeePercentOverride
	}
	referralFee := refPercent.Mul(amount).Div(oneHundred)

	return PaymentFields{
		Amount:         amount,
		AGCI:           agci,
		ReferralFeeUSD: referralFee,
	}, nil
}

// FieldsChanged reports whether a freshly computed payment row differs
// from its prior persisted state in either field the split recalculator
// depends on. The payment service uses this as the guard that keeps
// split rewrites from firing on no-op writes.
func FieldsChanged(prevAmount, prevAGCI, nextAmount, nextAGCI decimal.Decimal) bool {
	return !prevAmount.Equal(nextAmount) || !prevAGCI.Equal(nextAGCI)
}
