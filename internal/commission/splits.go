package commission

import "github.com/shopspring/decimal"

// Pools divides a payment's AGCI into the three category dollar pools
// using the deal's independent category weights. A missing (zero)
// weight simply produces a zero pool.
func Pools(deal DealTerms, agci decimal.Decimal) CategoryPools {
	return CategoryPools{
		Origination: deal.OriginationPercent.Mul(agci).Div(oneHundred),
		Site:        deal.SitePercent.Mul(agci).Div(oneHundred),
		Deal:        deal.DealPercent.Mul(agci).Div(oneHundred),
	}
}

// ComputeSplits rewrites the dollar breakdown for every broker with an
// interest on a payment. It is a full overwrite of derived values, not
// an increment, so repeated invocation with the same inputs yields the
// same rows. It never creates or removes broker rows; with an empty
// roster it returns an empty slice.
//
// Amounts are kept at full precision so that BrokerTotal is the exact
// sum of its three parts and the totals across brokers never exceed the
// payment's AGCI while each category's percentages sum to at most 100.
// Rounding to cents is a presentation concern.
func ComputeSplits(deal DealTerms, agci decimal.Decimal, splits []SplitInput) []SplitRow {
	pools := Pools(deal, agci)

	rows := make([]SplitRow, 0, len(splits))
	for _, in := range splits {
		orig := pools.Origination.Mul(in.OriginationPercent).Div(oneHundred)
		site := pools.Site.Mul(in.SitePercent).Div(oneHundred)
		dealUSD := pools.Deal.Mul(in.DealPercent).Div(oneHundred)

		rows = append(rows, SplitRow{
			BrokerID:       in.BrokerID,
			OriginationUSD: orig,
			SiteUSD:        site,
			DealUSD:        dealUSD,
			BrokerTotal:    orig.Add(site).Add(dealUSD),
		})
	}
	return rows
}
