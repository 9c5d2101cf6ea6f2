package casino

import "errors"

var (
	ErrInvalidBet       = errors.New("bet must be a positive whole number of coins")
	ErrMaxBet           = errors.New("bet exceeds the table limit")
	ErrNoSide           = errors.New("side must be heads or tails")
	ErrUnknownRisk      = errors.New("unknown risk level")
	ErrInvalidMineCount = errors.New("mine count must be between 1 and 24")
	ErrInvalidCell      = errors.New("cell index out of range")
	ErrSessionActive    = errors.New("a mines round is already active")
	ErrInvalidSession   = errors.New("no active mines round")
)
