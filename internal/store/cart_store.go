package store

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"antiqgallery/internal/domain"
)

// ChangeListener is notified after every cart write or clear with the new
// contents. Registered views (header counter, audit log) hang off this.
type ChangeListener func(sessionID string, items []domain.LineItem)

// CartStore owns the persisted cart. Callers never touch the carts table
// directly; all access goes through Read/Write/Clear.
type CartStore struct {
	db        *sqlx.DB
	listeners []ChangeListener
}

func NewCartStore(db *sqlx.DB) *CartStore { return &CartStore{db: db} }

// OnChange registers a listener invoked after every mutation.
func (s *CartStore) OnChange(fn ChangeListener) {
	s.listeners = append(s.listeners, fn)
}

func (s *CartStore) notify(sessionID string, items []domain.LineItem) {
	for _, fn := range s.listeners {
		fn(sessionID, items)
	}
}

// Read returns the session's line items in insertion order. A missing row or
// malformed stored value reads as an empty cart, never an error.
func (s *CartStore) Read(sessionID string) []domain.LineItem {
	var raw string
	if err := s.db.Get(&raw, `SELECT items_json FROM carts WHERE session_id = ?`, sessionID); err != nil {
		return []domain.LineItem{}
	}
	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []domain.LineItem{}
	}
	return items
}

// Write replaces the session's cart with items as one whole value.
func (s *CartStore) Write(sessionID string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO carts(session_id, items_json, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE
		SET items_json = excluded.items_json, updated_at = excluded.updated_at
	`, sessionID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	s.notify(sessionID, items)
	return nil
}

// Clear drops the session's cart unconditionally.
func (s *CartStore) Clear(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM carts WHERE session_id = ?`, sessionID); err != nil {
		return err
	}
	s.notify(sessionID, []domain.LineItem{})
	return nil
}
