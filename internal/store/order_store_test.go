package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"antiqgallery/internal/domain"
	"antiqgallery/internal/store"
)

func TestOrderStoreLast(t *testing.T) {
	db, err := store.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s := store.NewOrderStore(db)

	_, ok := s.Last("sid-1")
	require.False(t, ok, "no stored order yet")

	o := domain.Order{
		ID: "VAG-20260828-120000-4321", Name: "Asha", Phone: "9999999999",
		Email: "asha@example.com", Address: "12 Fort Rd", City: "Kochi", State: "KL",
		PaymentMode: "cod",
		Items:       []domain.LineItem{{ID: 3, Title: "Bronze Temple Figure", Price: 17500, Qty: 1}},
		Subtotal:    17500, Shipping: 200, Total: 17700,
		CreatedAt: "2026-08-28T12:00:00Z",
	}
	require.NoError(t, s.SaveLast("sid-1", o))

	got, ok := s.Last("sid-1")
	require.True(t, ok)
	require.Equal(t, o, got)

	// a later order replaces the previous one
	o2 := o
	o2.ID = "VAG-20260828-130000-1000"
	require.NoError(t, s.SaveLast("sid-1", o2))
	got, ok = s.Last("sid-1")
	require.True(t, ok)
	require.Equal(t, o2.ID, got.ID)
}
