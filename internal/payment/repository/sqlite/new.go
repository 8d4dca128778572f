package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"insurance-renewal-assistant/internal/payment/repository"
	"insurance-renewal-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS payments (
	id              TEXT PRIMARY KEY,
	session_id      TEXT NOT NULL DEFAULT '',
	transaction_ref TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL,
	method          TEXT NOT NULL DEFAULT '',
	insurer         TEXT NOT NULL DEFAULT '',
	plate           TEXT NOT NULL DEFAULT '',
	insurance       REAL NOT NULL DEFAULT 0,
	addons          REAL NOT NULL DEFAULT 0,
	roadtax         REAL NOT NULL DEFAULT 0,
	total           REAL NOT NULL DEFAULT 0,
	failure_reason  TEXT NOT NULL DEFAULT '',
	created_at      INTEGER NOT NULL,
	updated_at      INTEGER NOT NULL,
	expires_at      INTEGER NOT NULL,
	confirmed_at    INTEGER
);
CREATE INDEX IF NOT EXISTS idx_payments_session ON payments (session_id, created_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens (or creates) the database file at path and prepares the
// payments schema.
func Open(path string, l log.Logger) (repository.Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate payments schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// New wraps an already-open database handle. The caller owns the handle
// and must have applied the schema.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("payment/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("payment/repository/sqlite.%s", method)
}
