package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "antiqgallery/internal/log"
	"antiqgallery/internal/services"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
}

func (h *CheckoutHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// Page shows the order summary next to the contact/shipping form. An empty
// cart renders its own explicit empty state with zero totals.
func (h *CheckoutHandler) Page(c *fiber.Ctx) error {
	cv := h.Cart.View(h.ensureSID(c))
	return render(c, "checkout", fiber.Map{"Cart": cv, "Err": c.Query("err"), "Form": services.CheckoutForm{}})
}

// Place submits the checkout. Rejections re-render the page with a message
// and leave the cart untouched; success hands off to the confirmation view
// with the fresh order id.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	form := services.CheckoutForm{
		Name:        c.FormValue("fullName"),
		Phone:       c.FormValue("phone"),
		Email:       c.FormValue("email"),
		Address:     c.FormValue("address"),
		City:        c.FormValue("city"),
		State:       c.FormValue("state"),
		PaymentMode: c.FormValue("paymentMode"),
	}

	order, err := h.Checkout.Place(sid, form)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrMissingFields) {
			applog.Info(c, "checkout.reject", map[string]any{"reason": err.Error()})
			cv := h.Cart.View(sid)
			return render(c, "checkout", fiber.Map{"Cart": cv, "Err": err.Error(), "Form": form})
		}
		applog.Error(c, "checkout.place", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place your order. Please try again."})
	}

	applog.Audit(c, "checkout.place", map[string]any{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	})
	return c.Redirect("/thankyou?orderId=" + url.QueryEscape(order.ID))
}
