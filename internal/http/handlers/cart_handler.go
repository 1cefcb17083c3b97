package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "antiqgallery/internal/log"
	"antiqgallery/internal/services"
	"antiqgallery/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// Add merges qty of the chosen product into the cart and bounces back to
// the grid with a confirmation notice. Unknown ids bounce back silently.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Redirect("/products")
	}
	qty := validate.Qty(c.FormValue("qty"))
	title, err := h.Cart.Add(sid, id, qty)
	if err != nil {
		applog.Error(c, "cart.add", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	if title == "" {
		// unknown product: silent no-op
		return c.Redirect("/products")
	}
	applog.Info(c, "cart.add", map[string]any{"product_id": id, "qty": qty})
	return c.Redirect("/products?notice=" + url.QueryEscape(title+" added to cart"))
}

// Buy is the buy-now flow: only this item in the cart, straight to checkout.
func (h *CartHandler) Buy(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Redirect("/products")
	}
	if err := h.Cart.Clear(sid); err != nil {
		applog.Error(c, "cart.buy", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	if _, err := h.Cart.Add(sid, id, 1); err != nil {
		applog.Error(c, "cart.buy", err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	return c.Redirect("/checkout")
}

func (h *CartHandler) mutate(c *fiber.Ctx, op func(sid string, id int) error, action string) error {
	sid := h.ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Redirect("/checkout")
	}
	if err := op(sid, id); err != nil {
		applog.Error(c, action, err, map[string]any{"product_id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	return c.Redirect("/checkout")
}

func (h *CartHandler) Increment(c *fiber.Ctx) error {
	return h.mutate(c, h.Cart.Increment, "cart.inc")
}

func (h *CartHandler) Decrement(c *fiber.Ctx) error {
	return h.mutate(c, h.Cart.Decrement, "cart.dec")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	return h.mutate(c, h.Cart.Remove, "cart.remove")
}

// Clear empties the whole cart. The template asks for confirmation before
// submitting here.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	if err := h.Cart.Clear(sid); err != nil {
		applog.Error(c, "cart.clear", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update your cart"})
	}
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/checkout")
}
