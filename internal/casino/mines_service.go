package casino

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coin-casino/internal/event"
)

type SessionView struct {
	ID         string          `json:"id"`
	UID        int             `json:"uid"`
	Bet        decimal.Decimal `json:"bet"`
	MineCount  int             `json:"mineCount"`
	Status     SessionStatus   `json:"status"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Revealed   []int           `json:"revealed"`
	Balance    decimal.Decimal `json:"balance"`
}

type RevealResult struct {
	Cell       int             `json:"cell"`
	Safe       bool            `json:"safe"`
	Status     SessionStatus   `json:"status"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Revealed   []int           `json:"revealed"`
	Mines      []int           `json:"mines,omitempty"`
	Result     *Result         `json:"result,omitempty"`
}

// StartMines debits the bet and opens a session. A user has at most one
// active session; terminal sessions are replaced by the next start.
func (s *Service) StartMines(uid int, bet decimal.Decimal, mineCount int) (*SessionView, error) {
	if err := s.risk.Validate(bet); err != nil {
		return nil, err
	}
	if mineCount <= 0 || mineCount >= gridSize {
		return nil, ErrInvalidMineCount
	}

	unlock := s.wallet.Lock(uid)
	defer unlock()

	s.mu.Lock()
	if sess, ok := s.sessions[uid]; ok && sess.Status == StatusActive {
		s.mu.Unlock()
		return nil, ErrSessionActive
	}
	s.mu.Unlock()

	tx, err := s.wallet.BeginTx()
	if err != nil {
		return nil, err
	}
	if err := s.wallet.Debit(tx, uid, bet); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	mines := s.src.Perm(gridSize)[:mineCount]
	sess := newSession(uuid.New().String(), uid, bet, mines)

	s.mu.Lock()
	s.sessions[uid] = sess
	s.mu.Unlock()

	view, err := s.sessionView(sess)
	if err != nil {
		return nil, err
	}
	if s.bus != nil {
		s.bus.Publish(event.EventMinesStarted, view)
	}
	return view, nil
}

// Reveal applies one cell pick. Picks outside an active session and
// repeats of an already-revealed cell change nothing.
func (s *Service) Reveal(uid int, cell int) (*RevealResult, error) {
	if cell < 0 || cell >= gridSize {
		return nil, ErrInvalidCell
	}

	unlock := s.wallet.Lock(uid)
	defer unlock()

	sess := s.activeSession(uid)
	if sess == nil {
		return nil, ErrInvalidSession
	}

	if !sess.reveal(cell) {
		// duplicate pick: report state, settle nothing
		return &RevealResult{
			Cell:       cell,
			Safe:       true,
			Status:     sess.Status,
			Multiplier: sess.Multiplier,
			Revealed:   sess.Revealed(),
		}, nil
	}

	out := &RevealResult{
		Cell:       cell,
		Safe:       sess.Status != StatusBusted,
		Status:     sess.Status,
		Multiplier: sess.Multiplier,
		Revealed:   sess.Revealed(),
	}

	switch sess.Status {
	case StatusBusted:
		res, err := s.settleSession(sess, "busted")
		if err != nil {
			return nil, err
		}
		out.Mines = sess.Mines()
		out.Result = res
	case StatusCleared:
		res, err := s.settleSession(sess, "cleared")
		if err != nil {
			return nil, err
		}
		out.Mines = sess.Mines()
		out.Result = res
	}

	return out, nil
}

// CashOut settles an active session at the current multiplier. It needs
// at least one revealed cell.
func (s *Service) CashOut(uid int) (*Result, error) {
	unlock := s.wallet.Lock(uid)
	defer unlock()

	sess := s.activeSession(uid)
	if sess == nil || len(sess.order) == 0 {
		return nil, ErrInvalidSession
	}

	sess.Status = StatusCashedOut
	return s.settleSession(sess, "cashed_out")
}

func (s *Service) ActiveMines(uid int) (*SessionView, error) {
	unlock := s.wallet.Lock(uid)
	defer unlock()

	sess := s.activeSession(uid)
	if sess == nil {
		return nil, ErrInvalidSession
	}
	return s.sessionView(sess)
}

func (s *Service) activeSession(uid int) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[uid]
	if !ok || sess.Status != StatusActive {
		return nil
	}
	return sess
}

// settleSession issues the one credit of a mines round. The bet was
// debited at start, so even a bust runs the credit path, with zero.
func (s *Service) settleSession(sess *Session, outcome string) (*Result, error) {
	payout := sess.Bet.Mul(sess.Multiplier).Round(2)

	tx, err := s.wallet.BeginTx()
	if err != nil {
		return nil, err
	}
	if err := s.wallet.Credit(tx, sess.UID, payout); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.finish(&Result{
		Game:       GameMines,
		Ref:        sess.ID,
		UID:        sess.UID,
		Bet:        sess.Bet,
		Outcome:    outcome,
		Multiplier: sess.Multiplier,
		Payout:     payout,
		Win:        payout.IsPositive(),
	})
}

func (s *Service) sessionView(sess *Session) (*SessionView, error) {
	balance, err := s.wallet.Balance(sess.UID)
	if err != nil {
		return nil, err
	}
	return &SessionView{
		ID:         sess.ID,
		UID:        sess.UID,
		Bet:        sess.Bet,
		MineCount:  sess.MineCount,
		Status:     sess.Status,
		Multiplier: sess.Multiplier,
		Revealed:   sess.Revealed(),
		Balance:    balance,
	}, nil
}
