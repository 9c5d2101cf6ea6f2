package wallet

import (
	"database/sql"
	"errors"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"coin-casino/internal/ledger"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount must not be negative")
)

// Service owns user coin balances. Balances only move through Debit and
// Credit, both inside a caller-supplied transaction, so a settlement is
// all-or-nothing. Lock serializes settlements per user: two concurrent
// bets can never both pass the funds check against the same coins.
type Service struct {
	db       *sql.DB
	ledger   *ledger.Service
	starting decimal.Decimal

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func New(db *sql.DB, led *ledger.Service, starting decimal.Decimal) *Service {
	return &Service{
		db:       db,
		ledger:   led,
		starting: starting,
		locks:    make(map[int]*sync.Mutex),
	}
}

func (s *Service) Lock(uid int) func() {
	s.mu.Lock()
	l, ok := s.locks[uid]
	if !ok {
		l = &sync.Mutex{}
		s.locks[uid] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Service) BeginTx() (*sql.Tx, error) {
	return s.db.Begin()
}

func (s *Service) Balance(uid int) (decimal.Decimal, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback()

	b, err := s.balanceTx(tx, uid)
	if err != nil {
		return decimal.Zero, err
	}
	return b, tx.Commit()
}

func (s *Service) Debit(tx *sql.Tx, uid int, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	balance, err := s.balanceTx(tx, uid)
	if err != nil {
		return err
	}
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}

	if err := s.setBalance(tx, uid, balance.Sub(amount)); err != nil {
		return err
	}
	return s.ledger.RecordDebit(tx, account(uid), amount)
}

func (s *Service) Credit(tx *sql.Tx, uid int, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.IsZero() {
		return nil
	}

	balance, err := s.balanceTx(tx, uid)
	if err != nil {
		return err
	}

	if err := s.setBalance(tx, uid, balance.Add(amount)); err != nil {
		return err
	}
	return s.ledger.RecordCredit(tx, account(uid), amount)
}

// Topup credits outside of a settlement, used by the admin route.
func (s *Service) Topup(uid int, amount decimal.Decimal) error {
	unlock := s.Lock(uid)
	defer unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := s.Credit(tx, uid, amount); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// balanceTx reads the wallet row, creating it with the starting balance
// on first touch.
func (s *Service) balanceTx(tx *sql.Tx, uid int) (decimal.Decimal, error) {
	var coins string
	err := tx.QueryRow(`SELECT coins FROM wallets WHERE uid = ?`, uid).Scan(&coins)
	if err == sql.ErrNoRows {
		if _, err := tx.Exec(`INSERT INTO wallets(uid, coins) VALUES (?, ?)`,
			uid, s.starting.String()); err != nil {
			return decimal.Zero, err
		}
		return s.starting, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(coins)
}

func (s *Service) setBalance(tx *sql.Tx, uid int, balance decimal.Decimal) error {
	if balance.IsNegative() {
		return ErrInsufficientFunds
	}
	_, err := tx.Exec(`UPDATE wallets SET coins = ? WHERE uid = ?`, balance.String(), uid)
	return err
}

func account(uid int) string {
	return "user:" + strconv.Itoa(uid)
}
