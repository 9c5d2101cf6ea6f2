package casino

import (
	"sync"

	"github.com/shopspring/decimal"
)

const historyCap = 10

type HistoryEntry struct {
	Bet        decimal.Decimal `json:"bet"`
	Outcome    string          `json:"outcome"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Win        decimal.Decimal `json:"win"`
}

// History keeps the last settled wagers per game, newest first. It is
// observational only: settlement never reads it.
type History struct {
	mu      sync.Mutex
	entries map[Game][]HistoryEntry
}

func NewHistory() *History {
	return &History{
		entries: make(map[Game][]HistoryEntry),
	}
}

func (h *History) Record(game Game, e HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := append([]HistoryEntry{e}, h.entries[game]...)
	if len(list) > historyCap {
		list = list[:historyCap]
	}
	h.entries[game] = list
}

func (h *History) Recent(game Game) []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]HistoryEntry, len(h.entries[game]))
	copy(out, h.entries[game])
	return out
}
