package casino

import (
	"database/sql"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"coin-casino/internal/event"
	"coin-casino/internal/logger"
	"coin-casino/internal/rng"
)

type Wallet interface {
	BeginTx() (*sql.Tx, error)
	Balance(uid int) (decimal.Decimal, error)
	Debit(tx *sql.Tx, uid int, amount decimal.Decimal) error
	Credit(tx *sql.Tx, uid int, amount decimal.Decimal) error
	Lock(uid int) func()
}

// Service settles every wager: validate, debit, resolve the outcome,
// credit the payout (possibly zero) and record history. It is the only
// component that touches the wallet.
type Service struct {
	wallet  Wallet
	src     rng.Source
	bus     *event.Bus
	risk    *RiskEngine
	history *History
	rtp     *RTPTracker

	mu       sync.Mutex
	sessions map[int]*Session
}

func NewService(w Wallet, src rng.Source, bus *event.Bus) *Service {
	return &Service{
		wallet:   w,
		src:      src,
		bus:      bus,
		risk:     NewRisk(),
		history:  NewHistory(),
		rtp:      NewRTP(),
		sessions: make(map[int]*Session),
	}
}

func (s *Service) History(game Game) []HistoryEntry {
	return s.history.Recent(game)
}

func (s *Service) Stats() map[Game]GameStats {
	return s.rtp.Snapshot()
}

func (s *Service) RTP() *RTPTracker {
	return s.rtp
}

func (s *Service) PlayCoinFlip(uid int, bet decimal.Decimal, side Side) (*Result, error) {
	if err := s.risk.Validate(bet); err != nil {
		return nil, err
	}
	if side != Heads && side != Tails {
		return nil, ErrNoSide
	}

	return s.settle(uid, GameCoinFlip, bet, func() (string, decimal.Decimal) {
		landed := flipCoin(s.src)
		if landed == side {
			return string(landed), coinFlipMultiplier
		}
		return string(landed), decimal.Zero
	})
}

func (s *Service) PlayPlinko(uid int, bet decimal.Decimal, risk Risk) (*Result, error) {
	if err := s.risk.Validate(bet); err != nil {
		return nil, err
	}
	table, ok := plinkoTables[risk]
	if !ok {
		return nil, ErrUnknownRisk
	}

	return s.settle(uid, GamePlinko, bet, func() (string, decimal.Decimal) {
		bucket := dropBall(s.src)
		return "bucket:" + strconv.Itoa(bucket), table[bucket]
	})
}

// settle runs one single-shot wager as a unit: nothing happens if the
// debit fails, and once it succeeds the credit always follows in the
// same transaction.
func (s *Service) settle(uid int, game Game, bet decimal.Decimal, resolve func() (string, decimal.Decimal)) (*Result, error) {
	unlock := s.wallet.Lock(uid)
	defer unlock()

	tx, err := s.wallet.BeginTx()
	if err != nil {
		return nil, err
	}

	if err := s.wallet.Debit(tx, uid, bet); err != nil {
		tx.Rollback()
		return nil, err
	}

	outcome, mult := resolve()
	payout := bet.Mul(mult).Round(2)

	if err := s.wallet.Credit(tx, uid, payout); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.finish(&Result{
		Game:       game,
		Ref:        uuid.New().String(),
		UID:        uid,
		Bet:        bet,
		Outcome:    outcome,
		Multiplier: mult,
		Payout:     payout,
		Win:        payout.IsPositive(),
	})
}

// finish records the already-committed settlement: history, RTP totals
// and the settled event. Consumers of the event are observational only.
func (s *Service) finish(res *Result) (*Result, error) {
	balance, err := s.wallet.Balance(res.UID)
	if err != nil {
		return nil, err
	}
	res.Balance = balance

	s.history.Record(res.Game, HistoryEntry{
		Bet:        res.Bet,
		Outcome:    res.Outcome,
		Multiplier: res.Multiplier,
		Win:        res.Payout,
	})
	s.rtp.Record(res.Game, res.Bet, res.Payout)

	logger.Log.Info("wager settled",
		zap.String("game", string(res.Game)),
		zap.String("ref", res.Ref),
		zap.Int("uid", res.UID),
		zap.String("bet", res.Bet.String()),
		zap.String("payout", res.Payout.String()),
	)

	if s.bus != nil {
		s.bus.Publish(event.EventWagerSettled, res)
	}
	return res, nil
}
