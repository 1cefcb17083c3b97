package services

import (
	"errors"
	"time"

	"antiqgallery/internal/domain"
	"antiqgallery/internal/store"
	"antiqgallery/internal/validate"
)

var (
	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("your cart is empty")
	// ErrMissingFields rejects checkout with any blank required field.
	ErrMissingFields = errors.New("please fill all required fields")
)

// CheckoutForm carries the contact and shipping fields of the checkout
// form. Every field is required.
type CheckoutForm struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	City        string
	State       string
	PaymentMode string
}

// CheckoutService turns a non-empty cart plus a complete form into an
// immutable order. A cart is either open (editable) or submitted; a
// successful Place is terminal for that cart instance.
type CheckoutService struct {
	Cart   *CartService
	Orders *store.OrderStore
}

func NewCheckoutService(cart *CartService, orders *store.OrderStore) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders}
}

// Place validates the form against the current cart and, on success,
// snapshots cart and pricing into an order, persists it as the session's
// last order and clears the cart. On rejection nothing is mutated.
func (s *CheckoutService) Place(sessionID string, form CheckoutForm) (domain.Order, error) {
	fields := []*string{
		&form.Name, &form.Phone, &form.Email,
		&form.Address, &form.City, &form.State, &form.PaymentMode,
	}
	for _, f := range fields {
		v, ok := validate.Required(*f)
		if !ok {
			return domain.Order{}, ErrMissingFields
		}
		*f = v
	}

	items := s.Cart.Items(sessionID)
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	now := time.Now()
	pr := Price(items)
	order := domain.Order{
		ID:          GenerateOrderID(now),
		Name:        form.Name,
		Phone:       form.Phone,
		Email:       form.Email,
		Address:     form.Address,
		City:        form.City,
		State:       form.State,
		PaymentMode: validate.PaymentMode(form.PaymentMode),
		Items:       items,
		Subtotal:    pr.Subtotal,
		Shipping:    pr.Shipping,
		Total:       pr.Total,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}

	if err := s.Orders.SaveLast(sessionID, order); err != nil {
		return domain.Order{}, err
	}
	if err := s.Cart.Clear(sessionID); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
