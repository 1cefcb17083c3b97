package handlers

import (
	"github.com/gofiber/fiber/v2"

	"antiqgallery/internal/store"
)

type ThankYouHandler struct {
	Orders *store.OrderStore
}

// Page shows the confirmation. Order id comes from the query string, then
// from the session's last stored order, then a placeholder glyph.
func (h *ThankYouHandler) Page(c *fiber.Ctx) error {
	orderID := c.Query("orderId")
	if orderID == "" {
		if sid := c.Cookies("sid"); sid != "" {
			if o, ok := h.Orders.Last(sid); ok {
				orderID = o.ID
			}
		}
	}
	if orderID == "" {
		orderID = "—"
	}
	return render(c, "thankyou", fiber.Map{"OrderID": orderID})
}
