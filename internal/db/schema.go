package db

import "database/sql"

func Migrate(db *sql.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS wallets (
		uid INTEGER PRIMARY KEY,
		coins TEXT NOT NULL
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS ledger (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		account TEXT,
		debit TEXT,
		credit TEXT,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid INTEGER,
		action TEXT,
		metadata TEXT,
		created_at INTEGER
	);`)
}
