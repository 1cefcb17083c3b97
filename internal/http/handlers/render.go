package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Header badge, recomputed per request by the middleware in main.
	if n, ok := c.Locals("cartCount").(int); ok {
		data["CartCount"] = n
	} else {
		data["CartCount"] = 0
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}
