package store

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite file behind every persistent store and makes sure
// the schema exists. Carts and last orders are kept as whole JSON values per
// session, so a mutation is always a full-state replace.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS carts(
  session_id TEXT PRIMARY KEY,
  items_json TEXT NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS last_orders(
  session_id TEXT PRIMARY KEY,
  order_json TEXT NOT NULL,
  created_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}
