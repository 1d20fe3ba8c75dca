package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// The worked scenario used throughout: $26,160 fee over 2 payments,
// $7,194 AGCI, 50/25/25 category weights.
func sampleDeal() DealTerms {
	return DealTerms{
		Fee:                d("26160"),
		NumberOfPayments:   2,
		AGCI:               d("7194"),
		OriginationPercent: d("50"),
		SitePercent:        d("25"),
		DealPercent:        d("25"),
		ReferralFeePercent: d("0"),
	}
}

func TestComputePaymentFieldsDefault(t *testing.T) {
	got, err := ComputePaymentFields(sampleDeal(), PaymentInput{})
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(d("13080")), "amount = %s", got.Amount)
	assert.True(t, got.AGCI.Equal(d("3597")), "agci = %s", got.AGCI)
	assert.True(t, got.ReferralFeeUSD.IsZero())
}

func TestComputePaymentFieldsIdempotent(t *testing.T) {
	deal := sampleDeal()

	first, err := ComputePaymentFields(deal, PaymentInput{})
	require.NoError(t, err)

	// Feeding a computed row back through must not drift.
	second, err := ComputePaymentFields(deal, PaymentInput{Amount: first.Amount})
	require.NoError(t, err)

	assert.True(t, first.Amount.Equal(second.Amount))
	assert.True(t, first.AGCI.Equal(second.AGCI))
	assert.True(t, first.ReferralFeeUSD.Equal(second.ReferralFeeUSD))
}

func TestComputePaymentFieldsOverride(t *testing.T) {
	// $9,810 is 75% of the $13,080 scheduled amount, so AGCI must scale
	// to 75% of the per-payment share.
	got, err := ComputePaymentFields(sampleDeal(), PaymentInput{
		Amount:         d("9810"),
		AmountOverride: true,
	})
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(d("9810")), "amount = %s", got.Amount)
	assert.True(t, got.AGCI.Equal(d("2697.75")), "agci = %s", got.AGCI)
}

func TestComputePaymentFieldsOverrideAboveSchedule(t *testing.T) {
	// Overrides above the scheduled amount scale AGCI up, not down.
	got, err := ComputePaymentFields(sampleDeal(), PaymentInput{
		Amount:         d("26160"),
		AmountOverride: true,
	})
	require.NoError(t, err)

	assert.True(t, got.AGCI.Equal(d("7194")), "agci = %s", got.AGCI)
}

func TestComputePaymentFieldsInvalidCount(t *testing.T) {
	deal := sampleDeal()

	for _, n := range []int{0, -1} {
		deal.NumberOfPayments = n
		_, err := ComputePaymentFields(deal, PaymentInput{})
		assert.ErrorIs(t, err, ErrInvalidPaymentCount, "n=%d", n)
	}
}

func TestComputePaymentFieldsZeroFeeFallback(t *testing.T) {
	// A zero fee makes the scale ratio undefined; AGCI falls back to
	// the plain per-payment share instead of erroring.
	deal := sampleDeal()
	deal.Fee = decimal.Zero

	got, err := ComputePaymentFields(deal, PaymentInput{
		Amount:         d("500"),
		AmountOverride: true,
	})
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(d("500")))
	assert.True(t, got.AGCI.Equal(d("3597")), "agci = %s", got.AGCI)
}

func TestComputePaymentFieldsNegativeFeeFallback(t *testing.T) {
	deal := sampleDeal()
	deal.Fee = d("-1000")

	got, err := ComputePaymentFields(deal, PaymentInput{})
	require.NoError(t, err)

	// Non-override amount still tracks the (negative) schedule, but
	// AGCI uses the fallback share.
	assert.True(t, got.Amount.Equal(d("-500")))
	assert.True(t, got.AGCI.Equal(d("3597")))
}

func TestComputePaymentFieldsReferralFee(t *testing.T) {
	deal := sampleDeal()
	deal.ReferralFeePercent = d("10")

	t.Run("from deal", func(t *testing.T) {
		got, err := ComputePaymentFields(deal, PaymentInput{})
		require.NoError(t, err)
		assert.True(t, got.ReferralFeeUSD.Equal(d("1308")), "fee = %s", got.ReferralFeeUSD)
	})

	t.Run("row override wins", func(t *testing.T) {
		override := d("5")
		got, err := ComputePaymentFields(deal, PaymentInput{ReferralFeePercentOverride: &override})
		require.NoError(t, err)
		assert.True(t, got.ReferralFeeUSD.Equal(d("654")), "fee = %s", got.ReferralFeeUSD)
	})

	t.Run("tracks overridden amount", func(t *testing.T) {
		got, err := ComputePaymentFields(deal, PaymentInput{
			Amount:         d("9810"),
			AmountOverride: true,
		})
		require.NoError(t, err)
		assert.True(t, got.ReferralFeeUSD.Equal(d("981")), "fee = %s", got.ReferralFeeUSD)
	})
}

func TestFieldsChanged(t *testing.T) {
	tests := []struct {
		name                   string
		prevAmount, prevAGCI   string
		nextAmount, nextAGCI   string
		want                   bool
	}{
		{"no change", "13080", "3597", "13080", "3597", false},
		{"amount changed", "13080", "3597", "9810", "3597", true},
		{"agci changed", "13080", "3597", "13080", "2697.75", true},
		{"equal values different scale", "13080", "3597.00", "13080.00", "3597", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldsChanged(d(tt.prevAmount), d(tt.prevAGCI), d(tt.nextAmount), d(tt.nextAGCI))
			assert.Equal(t, tt.want, got)
		})
	}
}
