package casino

import "github.com/shopspring/decimal"

// Plinko payout tables, one multiplier per bucket. Each table is
// symmetric about the center bucket with its peak there; higher risk
// trades the safe outer multipliers for a larger center jackpot.
var plinkoTables = map[Risk][bucketCount]decimal.Decimal{
	RiskLow: {
		d("0.2"), d("0.4"), d("1"), d("1.5"), d("3"), d("1.5"), d("1"), d("0.4"), d("0.2"),
	},
	RiskMedium: {
		d("0.1"), d("0.3"), d("0.5"), d("2"), d("5"), d("2"), d("0.5"), d("0.3"), d("0.1"),
	},
	RiskHigh: {
		d("0"), d("0.2"), d("0.4"), d("1"), d("10"), d("1"), d("0.4"), d("0.2"), d("0"),
	},
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
