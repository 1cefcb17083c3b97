package catalog

import (
	"strings"

	"antiqgallery/internal/domain"
)

// products is the full gallery inventory. Defined once at startup, never
// mutated; cart lines copy what they need out of it.
var products = []domain.Product{
	{ID: 1, Title: "Ancient Roman Coin — 500 BC Edition", Price: 12000, Category: "coins", Img: "https://via.placeholder.com/600x420?text=Roman+Coin"},
	{ID: 2, Title: "Carved Stone Vessel — Mughal Replica", Price: 8500, Category: "vessels", Img: "https://via.placeholder.com/600x420?text=Stone+Vessel"},
	{ID: 3, Title: "Bronze Temple Figure", Price: 17500, Category: "figures", Img: "https://via.placeholder.com/600x420?text=Bronze+Figure"},
	{ID: 4, Title: "Miniature Monument Replica", Price: 2400, Category: "decor", Img: "https://via.placeholder.com/600x420?text=Mini+Monument"},
	{ID: 5, Title: "Vintage Oil Lamp", Price: 1800, Category: "decor", Img: "https://via.placeholder.com/600x420?text=Oil+Lamp"},
	{ID: 6, Title: "Colonial Wooden Chest (Restored)", Price: 9200, Category: "furniture", Img: "https://via.placeholder.com/600x420?text=Wooden+Chest"},
}

// All returns the catalog in display order.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Get looks a product up by id. ok is false for unknown ids.
func Get(id int) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Filter returns products whose title contains q (case-insensitive) and
// whose category matches cat. Empty q and empty-or-"all" cat match
// everything.
func Filter(q, cat string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []domain.Product{}
	for _, p := range products {
		if cat != "" && cat != "all" && p.Category != cat {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category tags in first-seen order.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
