package handlers

import (
	"github.com/gofiber/fiber/v2"

	"antiqgallery/internal/catalog"
)

type ProductHandler struct{}

func (h *ProductHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Categories": catalog.Categories(),
		"Featured":   catalog.All()[:3],
	})
}

// Grid renders the product grid with the text/category filters applied.
func (h *ProductHandler) Grid(c *fiber.Ctx) error {
	q := c.Query("q")
	cat := c.Query("category", "all")
	return render(c, "products", fiber.Map{
		"Products":   catalog.Filter(q, cat),
		"Categories": catalog.Categories(),
		"Q":          q,
		"Category":   cat,
		"Notice":     c.Query("notice"),
	})
}
