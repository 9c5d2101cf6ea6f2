package casino

import (
	"github.com/shopspring/decimal"

	"coin-casino/internal/rng"
)

// 1.98x on a correct call leaves a 1% house edge on the fair 2x.
var coinFlipMultiplier = decimal.RequireFromString("1.98")

func flipCoin(src rng.Source) Side {
	if src.Float64() < 0.5 {
		return Heads
	}
	return Tails
}
