package casino

import (
	"sync"

	"github.com/shopspring/decimal"
)

type GameStats struct {
	Bets        int64           `json:"bets"`
	TotalBet    decimal.Decimal `json:"totalBet"`
	TotalPayout decimal.Decimal `json:"totalPayout"`
	RTP         decimal.Decimal `json:"rtp"`
}

// RTPTracker accumulates wagered vs paid-out totals per game so the
// realized return-to-player can be watched against the configured edge.
type RTPTracker struct {
	mu    sync.Mutex
	games map[Game]*GameStats
}

func NewRTP() *RTPTracker {
	return &RTPTracker{
		games: make(map[Game]*GameStats),
	}
}

func (r *RTPTracker) Record(game Game, bet, payout decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.games[game]
	if !ok {
		st = &GameStats{TotalBet: decimal.Zero, TotalPayout: decimal.Zero}
		r.games[game] = st
	}
	st.Bets++
	st.TotalBet = st.TotalBet.Add(bet)
	st.TotalPayout = st.TotalPayout.Add(payout)
}

func (r *RTPTracker) Snapshot() map[Game]GameStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[Game]GameStats, len(r.games))
	for game, st := range r.games {
		snap := *st
		if snap.TotalBet.IsPositive() {
			snap.RTP = snap.TotalPayout.Div(snap.TotalBet).Round(4)
		}
		out[game] = snap
	}
	return out
}
