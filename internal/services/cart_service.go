package services

import (
	"antiqgallery/internal/catalog"
	"antiqgallery/internal/domain"
	"antiqgallery/internal/store"
)

// CartService owns every cart mutation. Each operation reads the whole cart,
// applies the change and writes the whole cart back; the store notifies
// registered views afterwards.
type CartService struct {
	Store *store.CartStore
}

func NewCartService(carts *store.CartStore) *CartService {
	return &CartService{Store: carts}
}

// Add puts qty of the product into the cart, merging into an existing line
// if one is present. Unknown product ids are a silent no-op. The added
// product's title is returned for the confirmation notice.
func (s *CartService) Add(sessionID string, productID, qty int) (string, error) {
	if qty < 1 {
		qty = 1
	}
	p, ok := catalog.Get(productID)
	if !ok {
		return "", nil
	}
	items := s.Store.Read(sessionID)
	merged := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.LineItem{
			ID: p.ID, Title: p.Title, Price: p.Price, Img: p.Img, Qty: qty,
		})
	}
	return p.Title, s.Store.Write(sessionID, items)
}

// Remove deletes the product's line item if present.
func (s *CartService) Remove(sessionID string, productID int) error {
	items := s.Store.Read(sessionID)
	out := items[:0]
	for _, it := range items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	return s.Store.Write(sessionID, out)
}

// SetQty sets the line's quantity to newQty, floored at 1. Missing lines
// are a no-op.
func (s *CartService) SetQty(sessionID string, productID, newQty int) error {
	if newQty < 1 {
		newQty = 1
	}
	items := s.Store.Read(sessionID)
	for i := range items {
		if items[i].ID == productID {
			items[i].Qty = newQty
			return s.Store.Write(sessionID, items)
		}
	}
	return nil
}

// Increment bumps the line's quantity by one.
func (s *CartService) Increment(sessionID string, productID int) error {
	items := s.Store.Read(sessionID)
	for _, it := range items {
		if it.ID == productID {
			return s.SetQty(sessionID, productID, it.Qty+1)
		}
	}
	return nil
}

// Decrement lowers the line's quantity by one; at quantity 1 the line is
// removed instead of being stored as 0.
func (s *CartService) Decrement(sessionID string, productID int) error {
	items := s.Store.Read(sessionID)
	for _, it := range items {
		if it.ID == productID {
			if it.Qty <= 1 {
				return s.Remove(sessionID, productID)
			}
			return s.SetQty(sessionID, productID, it.Qty-1)
		}
	}
	return nil
}

// Clear empties the cart.
func (s *CartService) Clear(sessionID string) error {
	return s.Store.Clear(sessionID)
}

// Items returns the current line items in insertion order.
func (s *CartService) Items(sessionID string) []domain.LineItem {
	return s.Store.Read(sessionID)
}

// Count is the total quantity across all lines, shown in the header badge.
func (s *CartService) Count(sessionID string) int {
	n := 0
	for _, it := range s.Store.Read(sessionID) {
		n += it.Qty
	}
	return n
}

// CartView is the order-summary projection of a cart.
type CartView struct {
	Items    []domain.LineItem
	Subtotal int
	Shipping int
	Total    int
}

// View projects the current cart plus derived pricing.
func (s *CartService) View(sessionID string) CartView {
	items := s.Store.Read(sessionID)
	pr := Price(items)
	return CartView{Items: items, Subtotal: pr.Subtotal, Shipping: pr.Shipping, Total: pr.Total}
}
