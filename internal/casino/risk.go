package casino

import "github.com/shopspring/decimal"

type RiskEngine struct {
	MinStake decimal.Decimal
	MaxBet   decimal.Decimal
}

func NewRisk() *RiskEngine {
	return &RiskEngine{
		MinStake: decimal.NewFromInt(1),
		MaxBet:   decimal.NewFromInt(10000),
	}
}

// Validate rejects a stake before any debit happens. Bets are whole
// coins only.
func (r *RiskEngine) Validate(bet decimal.Decimal) error {
	if bet.LessThan(r.MinStake) || !bet.Equal(bet.Truncate(0)) {
		return ErrInvalidBet
	}
	if bet.GreaterThan(r.MaxBet) {
		return ErrMaxBet
	}
	return nil
}
