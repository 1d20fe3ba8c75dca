package commission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPools(t *testing.T) {
	pools := Pools(sampleDeal(), d("2697.75"))

	assert.True(t, pools.Origination.Equal(d("1348.875")), "origination = %s", pools.Origination)
	assert.True(t, pools.Site.Equal(d("674.4375")), "site = %s", pools.Site)
	assert.True(t, pools.Deal.Equal(d("674.4375")), "deal = %s", pools.Deal)
}

func TestComputeSplitsFullInterest(t *testing.T) {
	// A broker holding 100% of every category collects the entire AGCI.
	brokerID := uuid.New()
	rows := ComputeSplits(sampleDeal(), d("2697.75"), []SplitInput{{
		BrokerID:           brokerID,
		OriginationPercent: d("100"),
		SitePercent:        d("100"),
		DealPercent:        d("100"),
	}})
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, brokerID, row.BrokerID)
	assert.True(t, row.BrokerTotal.Equal(d("2697.75")), "total = %s", row.BrokerTotal)
	assert.True(t, row.OriginationUSD.Add(row.SiteUSD).Add(row.DealUSD).Equal(row.BrokerTotal))
}

func TestComputeSplitsTwoBrokers(t *testing.T) {
	deal := sampleDeal()
	agci := d("3597")

	rows := ComputeSplits(deal, agci, []SplitInput{
		{
			BrokerID:           uuid.New(),
			OriginationPercent: d("60"),
			SitePercent:        d("50"),
			DealPercent:        d("50"),
		},
		{
			BrokerID:           uuid.New(),
			OriginationPercent: d("40"),
			SitePercent:        d("50"),
			DealPercent:        d("50"),
		},
	})
	require.Len(t, rows, 2)

	// Each row's total is the exact sum of its parts.
	for _, row := range rows {
		assert.True(t, row.OriginationUSD.Add(row.SiteUSD).Add(row.DealUSD).Equal(row.BrokerTotal))
	}

	// Per-category percentages sum to 100, so the broker totals consume
	// the whole AGCI and never exceed it.
	sum := rows[0].BrokerTotal.Add(rows[1].BrokerTotal)
	assert.True(t, sum.Equal(agci), "sum = %s", sum)
}

func TestComputeSplitsPartialInterestStaysUnderAGCI(t *testing.T) {
	agci := d("2697.75")
	rows := ComputeSplits(sampleDeal(), agci, []SplitInput{
		{BrokerID: uuid.New(), OriginationPercent: d("70"), SitePercent: d("30")},
		{BrokerID: uuid.New(), OriginationPercent: d("30"), SitePercent: d("70"), DealPercent: d("100")},
	})

	var sum decimal.Decimal
	for _, row := range rows {
		sum = sum.Add(row.BrokerTotal)
	}
	assert.True(t, sum.LessThanOrEqual(agci), "sum = %s", sum)
}

func TestComputeSplitsZeroWeights(t *testing.T) {
	// Missing category weights on the deal behave as zero pools.
	deal := sampleDeal()
	deal.OriginationPercent = decimal.Zero
	deal.SitePercent = decimal.Zero
	deal.DealPercent = decimal.Zero

	rows := ComputeSplits(deal, d("3597"), []SplitInput{{
		BrokerID:           uuid.New(),
		OriginationPercent: d("100"),
		SitePercent:        d("100"),
		DealPercent:        d("100"),
	}})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].BrokerTotal.IsZero())
}

func TestComputeSplitsEmptyRoster(t *testing.T) {
	rows := ComputeSplits(sampleDeal(), d("3597"), nil)
	assert.Empty(t, rows)
}

func TestComputeSplitsIdempotent(t *testing.T) {
	in := []SplitInput{{
		BrokerID:           uuid.New(),
		OriginationPercent: d("55.5"),
		SitePercent:        d("12.25"),
		DealPercent:        d("80"),
	}}

	first := ComputeSplits(sampleDeal(), d("2697.75"), in)
	second := ComputeSplits(sampleDeal(), d("2697.75"), in)
	require.Len(t, second, 1)

	assert.True(t, first[0].OriginationUSD.Equal(second[0].OriginationUSD))
	assert.True(t, first[0].SiteUSD.Equal(second[0].SiteUSD))
	assert.True(t, first[0].DealUSD.Equal(second[0].DealUSD))
	assert.True(t, first[0].BrokerTotal.Equal(second[0].BrokerTotal))
}
