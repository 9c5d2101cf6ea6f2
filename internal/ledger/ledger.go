package ledger

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service keeps a double-entry journal of every balance movement.
// Amounts are stored as decimal strings so the journal never carries
// float rounding artifacts.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) RecordDebit(tx *sql.Tx, account string, amount decimal.Decimal) error {
	return s.record(tx, account, amount, decimal.Zero)
}

func (s *Service) RecordCredit(tx *sql.Tx, account string, amount decimal.Decimal) error {
	return s.record(tx, account, decimal.Zero, amount)
}

func (s *Service) record(tx *sql.Tx, account string, debit, credit decimal.Decimal) error {
	ref := uuid.New().String()
	ts := time.Now().Unix()

	_, err := tx.Exec(`
	INSERT INTO ledger(ref,account,debit,credit,ts)
	VALUES (?,?,?,?,?)
	`, ref, account, debit.String(), credit.String(), ts)

	return err
}
