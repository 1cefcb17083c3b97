package services

import "antiqgallery/internal/domain"

// ShippingFee is the flat delivery charge in rupees, applied to any
// non-empty cart.
const ShippingFee = 200

// Subtotal is the exact sum of price x qty over the line items.
func Subtotal(items []domain.LineItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Qty
	}
	return total
}

// Shipping is the flat fee for a non-empty cart, 0 otherwise.
func Shipping(subtotal int) int {
	if subtotal > 0 {
		return ShippingFee
	}
	return 0
}

// Pricing is the derived money view of a cart.
type Pricing struct {
	Subtotal int
	Shipping int
	Total    int
}

// Price derives subtotal, shipping and total from the given line items.
func Price(items []domain.LineItem) Pricing {
	sub := Subtotal(items)
	ship := Shipping(sub)
	return Pricing{Subtotal: sub, Shipping: ship, Total: sub + ship}
}
