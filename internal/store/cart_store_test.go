package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"antiqgallery/internal/domain"
	"antiqgallery/internal/store"
)

func memdb(t *testing.T) *store.CartStore {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewCartStore(db)
}

func TestCartStoreRoundTrip(t *testing.T) {
	s := memdb(t)
	items := []domain.LineItem{
		{ID: 1, Title: "Roman Coin", Price: 12000, Img: "coin.jpg", Qty: 2},
		{ID: 5, Title: "Oil Lamp", Price: 1800, Img: "lamp.jpg", Qty: 1},
	}
	require.NoError(t, s.Write("sid-1", items))
	require.Equal(t, items, s.Read("sid-1"), "insertion order must survive the round trip")
}

func TestCartStoreMissingReadsEmpty(t *testing.T) {
	s := memdb(t)
	require.Empty(t, s.Read("nobody"))
}

func TestCartStoreMalformedReadsEmpty(t *testing.T) {
	db, err := store.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s := store.NewCartStore(db)

	_, err = db.Exec(`INSERT INTO carts(session_id, items_json) VALUES('sid-1', '{not json')`)
	require.NoError(t, err)
	require.Empty(t, s.Read("sid-1"), "malformed data is treated as empty, never an error")
}

func TestCartStoreClear(t *testing.T) {
	s := memdb(t)
	require.NoError(t, s.Write("sid-1", []domain.LineItem{{ID: 1, Qty: 1}}))
	require.NoError(t, s.Clear("sid-1"))
	require.Empty(t, s.Read("sid-1"))
}

func TestCartStoreNotifiesListeners(t *testing.T) {
	s := memdb(t)
	var gotSID string
	var gotLen int
	calls := 0
	s.OnChange(func(sid string, items []domain.LineItem) {
		calls++
		gotSID = sid
		gotLen = len(items)
	})

	require.NoError(t, s.Write("sid-1", []domain.LineItem{{ID: 1, Qty: 3}}))
	require.Equal(t, 1, calls)
	require.Equal(t, "sid-1", gotSID)
	require.Equal(t, 1, gotLen)

	require.NoError(t, s.Clear("sid-1"))
	require.Equal(t, 2, calls)
	require.Equal(t, 0, gotLen)
}
