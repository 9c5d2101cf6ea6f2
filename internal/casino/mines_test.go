package casino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coin-casino/internal/wallet"
)

func TestMinesMultiplierFormula(t *testing.T) {
	// 0.97 / prod((20-i)/(25-i)) for gridSize 25, 5 mines
	cases := map[int]string{
		1: "1.21",
		2: "1.53",
		3: "1.96",
	}
	for k, want := range cases {
		got := minesMultiplier(5, k)
		assert.True(t, got.Equal(dec(t, want)), "k=%d got %s want %s", k, got, want)
	}
}

func TestMinesMultiplierMonotonic(t *testing.T) {
	prev := minesMultiplier(5, 0)
	require.True(t, prev.Equal(dec(t, "1")))

	for k := 1; k <= 20; k++ {
		cur := minesMultiplier(5, k)
		assert.True(t, cur.GreaterThan(prev), "multiplier must grow at k=%d (%s -> %s)", k, prev, cur)
		prev = cur
	}
}

func TestMinesMultiplierOutOfRange(t *testing.T) {
	assert.True(t, minesMultiplier(5, 21).IsZero())
	assert.True(t, minesMultiplier(24, 2).IsZero())
}

func TestMinesStartDebitsBet(t *testing.T) {
	src := &stubSource{perm: permWithMines(0, 1, 2, 3, 4)}
	svc, w := newTestService(t, src, dec(t, "1000"))

	view, err := svc.StartMines(1, dec(t, "10"), 5)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, view.Status)
	assert.Equal(t, 5, view.MineCount)
	assert.True(t, view.Multiplier.Equal(dec(t, "1")))
	assert.Empty(t, view.Revealed)
	assert.True(t, view.Balance.Equal(dec(t, "990")))

	balance, err := w.Balance(1)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec(t, "990")))
}

func TestMinesRevealAndCashOut(t *testing.T) {
	src := &stubSource{perm: permWithMines(0, 1, 2, 3, 4)}
	svc, _ := newTestService(t, src, dec(t, "1000"))

	_, err := svc.StartMines(1, dec(t, "10"), 5)
	require.NoError(t, err)

	for i, cell := range []int{5, 6, 7} {
		r, err := svc.Reveal(1, cell)
		require.NoError(t, err)
		assert.True(t, r.Safe)
		assert.Equal(t, StatusActive, r.Status)
		assert.True(t, r.Multiplier.Equal(minesMultiplier(5, i+1)))
	}

	res, err := svc.CashOut(1)
	require.NoError(t, err)

	assert.True(t, res.Win)
	assert.True(t, res.Multiplier.Equal(dec(t, "1.96")))
	assert.True(t, res.Payout.Equal(dec(t, "19.6")), "payout %s", res.Payout)
	assert.True(t, res.Balance.Equal(dec(t, "1009.6")), "balance %s", res.Balance)
}

func TestMinesBust(t *testing.T) {
	src := &stubSource{perm: permWithMines(12)}
	svc, w := newTestService(t, src, dec(t, "500"))

	_, err := svc.StartMines(3, dec(t, "50"), 1)
	require.NoError(t, err)

	r, err := svc.Reveal(3, 12)
	require.NoError(t, err)

	assert.False(t, r.Safe)
	assert.Equal(t, StatusBusted, r.Status)
	assert.Contains(t, r.Mines, 12)
	require.NotNil(t, r.Result)
	assert.True(t, r.Result.Payout.IsZero())
	assert.False(t, r.Result.Win)

	balance, err := w.Balance(3)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec(t, "450")), "bust pays nothing")

	// busted session is terminal: further picks are rejected
	_, err = svc.Reveal(3, 5)
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = svc.CashOut(3)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// zero-win round still lands in history
	entries := svc.History(GameMines)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Win.IsZero())
	assert.Equal(t, "busted", entries[0].Outcome)
}

func TestMinesDuplicateRevealIsNoop(t *testing.T) {
	src := &stubSource{perm: permWithMines(0, 1, 2, 3, 4)}
	svc, w := newTestService(t, src, dec(t, "1000"))

	_, err := svc.StartMines(1, dec(t, "10"), 5)
	require.NoError(t, err)

	first, err := svc.Reveal(1, 9)
	require.NoError(t, err)
	second, err := svc.Reveal(1, 9)
	require.NoError(t, err)

	assert.Equal(t, first.Multiplier, second.Multiplier)
	assert.Equal(t, first.Revealed, second.Revealed)
	assert.Len(t, second.Revealed, 1)

	balance, err := w.Balance(1)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec(t, "990")))
	assert.Empty(t, svc.History(GameMines), "no settlement happened yet")
}

func TestMinesFullClearAutoSettles(t *testing.T) {
	src := &stubSource{perm: permWithMines(20, 21, 22, 23, 24)}
	svc, _ := newTestService(t, src, dec(t, "1000"))

	_, err := svc.StartMines(1, dec(t, "10"), 5)
	require.NoError(t, err)

	var last *RevealResult
	for cell := 0; cell < 20; cell++ {
		last, err = svc.Reveal(1, cell)
		require.NoError(t, err)
		require.True(t, last.Safe)
	}

	assert.Equal(t, StatusCleared, last.Status)
	require.NotNil(t, last.Result, "clearing the board settles automatically")

	wantMult := minesMultiplier(5, 20)
	wantPayout := dec(t, "10").Mul(wantMult).Round(2)
	assert.True(t, last.Result.Multiplier.Equal(wantMult))
	assert.True(t, last.Result.Payout.Equal(wantPayout))
	assert.True(t, last.Result.Balance.Equal(dec(t, "990").Add(wantPayout)))
}

func TestMinesCashOutNeedsReveal(t *testing.T) {
	src := &stubSource{perm: permWithMines(0)}
	svc, _ := newTestService(t, src, dec(t, "100"))

	_, err := svc.StartMines(1, dec(t, "10"), 1)
	require.NoError(t, err)

	_, err = svc.CashOut(1)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestMinesOneActiveSessionPerUser(t *testing.T) {
	src := &stubSource{perm: permWithMines(0)}
	svc, _ := newTestService(t, src, dec(t, "1000"))

	_, err := svc.StartMines(1, dec(t, "10"), 1)
	require.NoError(t, err)

	_, err = svc.StartMines(1, dec(t, "10"), 1)
	assert.ErrorIs(t, err, ErrSessionActive)

	// a bust frees the seat
	_, err = svc.Reveal(1, 0)
	require.NoError(t, err)
	_, err = svc.StartMines(1, dec(t, "10"), 1)
	require.NoError(t, err)
}

func TestMinesValidation(t *testing.T) {
	svc, _ := newTestService(t, &stubSource{}, dec(t, "1000"))

	_, err := svc.StartMines(1, dec(t, "10"), 0)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
	_, err = svc.StartMines(1, dec(t, "10"), 25)
	assert.ErrorIs(t, err, ErrInvalidMineCount)
	_, err = svc.StartMines(1, dec(t, "0"), 5)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = svc.Reveal(1, -1)
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = svc.Reveal(1, 25)
	assert.ErrorIs(t, err, ErrInvalidCell)
	_, err = svc.Reveal(1, 5)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestMinesStartInsufficientFunds(t *testing.T) {
	svc, w := newTestService(t, &stubSource{}, dec(t, "5"))

	_, err := svc.StartMines(1, dec(t, "10"), 5)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)

	balance, err := w.Balance(1)
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec(t, "5")))
}

func TestMinesDistinctMineCells(t *testing.T) {
	src, err := newRealSource(t)
	require.NoError(t, err)
	svc, _ := newTestService(t, src, dec(t, "100000"))

	for round := 0; round < 20; round++ {
		view, err := svc.StartMines(1, dec(t, "1"), 8)
		require.NoError(t, err)
		require.Equal(t, 8, view.MineCount)

		// bust or cash out to free the seat; revealing every cell in
		// order guarantees a terminal state
		for cell := 0; cell < gridSize; cell++ {
			r, err := svc.Reveal(1, cell)
			if err != nil {
				break
			}
			if r.Status != StatusActive {
				seen := make(map[int]bool)
				for _, m := range r.Mines {
					assert.False(t, seen[m], "duplicate mine cell %d", m)
					assert.GreaterOrEqual(t, m, 0)
					assert.Less(t, m, gridSize)
					seen[m] = true
				}
				require.Len(t, r.Mines, 8)
				break
			}
		}
	}
}
