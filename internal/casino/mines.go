package casino

import "github.com/shopspring/decimal"

// 5x5 grid
const gridSize = 25

var minesHouseEdge = decimal.RequireFromString("0.97")

type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusBusted    SessionStatus = "busted"
	StatusCashedOut SessionStatus = "cashed_out"
	StatusCleared   SessionStatus = "cleared"
)

// Session is one mines round. The bet is debited when the session is
// created and settled exactly once, on bust, cash-out or full clear.
type Session struct {
	ID         string
	UID        int
	Bet        decimal.Decimal
	MineCount  int
	Status     SessionStatus
	Multiplier decimal.Decimal

	mines    map[int]bool
	revealed map[int]bool
	order    []int
}

func newSession(id string, uid int, bet decimal.Decimal, mineCells []int) *Session {
	mines := make(map[int]bool, len(mineCells))
	for _, c := range mineCells {
		mines[c] = true
	}
	return &Session{
		ID:         id,
		UID:        uid,
		Bet:        bet,
		MineCount:  len(mineCells),
		Status:     StatusActive,
		Multiplier: decimal.NewFromInt(1),
		mines:      mines,
		revealed:   make(map[int]bool),
	}
}

func (s *Session) safeCells() int {
	return gridSize - s.MineCount
}

func (s *Session) Revealed() []int {
	out := make([]int, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Session) Mines() []int {
	out := make([]int, 0, len(s.mines))
	for c := range s.mines {
		out = append(out, c)
	}
	return out
}

// reveal applies one cell pick to an active session and reports whether
// it changed anything. Picks on terminal sessions or already-revealed
// cells are no-ops.
func (s *Session) reveal(cell int) (changed bool) {
	if s.Status != StatusActive || s.revealed[cell] {
		return false
	}

	if s.mines[cell] {
		s.Status = StatusBusted
		s.Multiplier = decimal.Zero
		return true
	}

	s.revealed[cell] = true
	s.order = append(s.order, cell)
	s.Multiplier = minesMultiplier(s.MineCount, len(s.order))
	if len(s.order) == s.safeCells() {
		s.Status = StatusCleared
	}
	return true
}

// minesMultiplier is the house edge over the survival probability of
// picking `revealed` safe cells in a row. It is recomputed from the
// full product on every reveal rather than accumulated incrementally,
// so rounding never drifts across a round.
func minesMultiplier(mineCount, revealed int) decimal.Decimal {
	safe := gridSize - mineCount
	if revealed <= 0 {
		return decimal.NewFromInt(1)
	}
	if revealed > safe {
		return decimal.Zero
	}

	m := minesHouseEdge
	for i := 0; i < revealed; i++ {
		m = m.Mul(decimal.NewFromInt(int64(gridSize - i))).
			Div(decimal.NewFromInt(int64(safe - i)))
	}
	return m.Round(2)
}
