package handlers

import (
	"github.com/jmoiron/sqlx"

	"antiqgallery/internal/services"
	"antiqgallery/internal/store"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ThankYouHandler *ThankYouHandler

	Cart *services.CartService
}

func NewDeps(db *sqlx.DB) *Deps {
	cartStore := store.NewCartStore(db)
	orderStore := store.NewOrderStore(db)

	cartSvc := services.NewCartService(cartStore)
	checkoutSvc := services.NewCheckoutService(cartSvc, orderStore)

	return &Deps{
		ProductHandler:  &ProductHandler{},
		CartHandler:     &CartHandler{Cart: cartSvc},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc},
		ThankYouHandler: &ThankYouHandler{Orders: orderStore},
		Cart:            cartSvc,
	}
}
