package casino

import "github.com/shopspring/decimal"

type Game string

const (
	GameCoinFlip Game = "coinflip"
	GameMines    Game = "mines"
	GamePlinko   Game = "plinko"
)

type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// Result is the settlement of one wager: exactly one debit of Bet and
// one credit of Payout (possibly zero) have been applied to the wallet.
type Result struct {
	Game       Game            `json:"game"`
	Ref        string          `json:"ref"`
	UID        int             `json:"uid"`
	Bet        decimal.Decimal `json:"bet"`
	Outcome    string          `json:"outcome"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
	Win        bool            `json:"win"`
	Balance    decimal.Decimal `json:"balance"`
}
