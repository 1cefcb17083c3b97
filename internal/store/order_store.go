package store

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"antiqgallery/internal/domain"
)

// OrderStore keeps the last completed order per session so the confirmation
// view can fall back to it when no order id is passed explicitly.
type OrderStore struct{ db *sqlx.DB }

func NewOrderStore(db *sqlx.DB) *OrderStore { return &OrderStore{db: db} }

// SaveLast replaces the session's last order with o.
func (s *OrderStore) SaveLast(sessionID string, o domain.Order) error {
	raw, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO last_orders(session_id, order_json, created_at)
		VALUES(?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE
		SET order_json = excluded.order_json, created_at = excluded.created_at
	`, sessionID, string(raw), time.Now().UTC().Format(time.RFC3339))
	return err
}

// Last returns the session's last order. ok is false when no order was
// stored or the stored value is malformed.
func (s *OrderStore) Last(sessionID string) (domain.Order, bool) {
	var raw string
	if err := s.db.Get(&raw, `SELECT order_json FROM last_orders WHERE session_id = ?`, sessionID); err != nil {
		return domain.Order{}, false
	}
	var o domain.Order
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return domain.Order{}, false
	}
	return o, true
}
