package casino

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"coin-casino/internal/db"
	"coin-casino/internal/event"
	"coin-casino/internal/ledger"
	"coin-casino/internal/rng"
	"coin-casino/internal/wallet"
)

// stubSource forces outcomes: Float64 cycles through the scripted
// values, Perm returns the scripted permutation when the length fits.
type stubSource struct {
	mu     sync.Mutex
	floats []float64
	i      int
	perm   []int
}

func (s *stubSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.i%len(s.floats)]
	s.i++
	return v
}

func (s *stubSource) Intn(n int) int {
	return 0
}

func (s *stubSource) Perm(n int) []int {
	if len(s.perm) == n {
		out := make([]int, n)
		copy(out, s.perm)
		return out
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// permWithMines builds a grid permutation whose first cells are the
// wanted mine positions, so a scripted Perm pins the mine layout.
func permWithMines(mines ...int) []int {
	seen := make(map[int]bool, len(mines))
	out := append([]int{}, mines...)
	for _, m := range mines {
		seen[m] = true
	}
	for c := 0; c < gridSize; c++ {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func newTestService(t *testing.T, src rng.Source, starting decimal.Decimal) (*Service, *wallet.Service) {
	t.Helper()

	database := db.Init(filepath.Join(t.TempDir(), "casino.db"))
	t.Cleanup(func() { database.Close() })

	w := wallet.New(database, ledger.New(database), starting)
	return NewService(w, src, event.NewBus()), w
}

func newRealSource(t *testing.T) (rng.Source, error) {
	t.Helper()
	return rng.New()
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}
