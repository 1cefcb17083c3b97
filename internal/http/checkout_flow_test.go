package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"antiqgallery/internal/http/handlers"
	"antiqgallery/internal/store"
)

// Minimal app wiring for flow tests; CSRF is exercised manually, not here.
func newTestApp(t *testing.T) (*fiber.App, *handlers.Deps) {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db)

	engine := html.New("../../web/templates", ".html")
	engine.AddFunc("inr", handlers.FormatINR)
	engine.AddFunc("mulqty", func(price, qty int) int { return price * qty })

	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			c.Locals("cartCount", deps.Cart.Count(sid))
		}
		return c.Next()
	})

	app.Get("/products", deps.ProductHandler.Grid)
	app.Post("/cart/add", deps.CartHandler.Add)
	app.Post("/cart/buy", deps.CartHandler.Buy)
	app.Post("/cart/dec", deps.CartHandler.Decrement)
	app.Get("/checkout", deps.CheckoutHandler.Page)
	app.Post("/checkout", deps.CheckoutHandler.Place)
	app.Get("/thankyou", deps.ThankYouHandler.Page)

	return app, deps
}

func formReq(path string, form url.Values, sid string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	return req
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestAddRedirectsWithNotice(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(formReq("/cart/add", url.Values{"productId": {"1"}, "qty": {"1"}}, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want 302, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.Contains(loc, "notice=") {
		t.Fatalf("expected confirmation notice redirect, got %q", loc)
	}
	if extractCookie(resp, "sid") == "" {
		t.Fatal("a session cookie should be issued on first mutation")
	}
}

func TestCheckoutFlow(t *testing.T) {
	app, deps := newTestApp(t)

	resp, err := app.Test(formReq("/cart/add", url.Values{"productId": {"2"}, "qty": {"2"}}, ""))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("no sid cookie")
	}

	form := url.Values{
		"fullName": {"Asha Nair"}, "phone": {"9876543210"}, "email": {"asha@example.com"},
		"address": {"12 Fort Road"}, "city": {"Kochi"}, "state": {"Kerala"}, "paymentMode": {"cod"},
	}
	resp, err = app.Test(formReq("/checkout", form, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusFound {
		t.Fatalf("want 302, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	re := regexp.MustCompile(`orderId=VAG-\d{8}-\d{6}-\d{4}$`)
	if !re.MatchString(loc) {
		t.Fatalf("bad confirmation redirect %q", loc)
	}
	if deps.Cart.Count(sid) != 0 {
		t.Fatal("cart must be empty after checkout")
	}

	// Confirmation falls back to the stored last order when no query param
	// is present.
	req := httptest.NewRequest("GET", "/thankyou", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "VAG-") {
		t.Fatal("thankyou page should show the last order id")
	}
}

func TestCheckoutRejectsBlankField(t *testing.T) {
	app, deps := newTestApp(t)

	resp, err := app.Test(formReq("/cart/add", url.Values{"productId": {"3"}}, ""))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")

	form := url.Values{
		"fullName": {"Asha"}, "phone": {"9876543210"}, "email": {"asha@example.com"},
		"address": {"12 Fort Road"}, "city": {"   "}, "state": {"Kerala"}, "paymentMode": {"cod"},
	}
	resp, err = app.Test(formReq("/checkout", form, sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("rejection should re-render the form, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "required fields") {
		t.Fatal("expected a user-visible validation message")
	}
	if deps.Cart.Count(sid) != 1 {
		t.Fatal("rejection must not mutate the cart")
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{
		"fullName": {"Asha"}, "phone": {"9876543210"}, "email": {"asha@example.com"},
		"address": {"12 Fort Road"}, "city": {"Kochi"}, "state": {"Kerala"}, "paymentMode": {"cod"},
	}
	resp, err := app.Test(formReq("/checkout", form, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("rejection should re-render the form, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "empty") {
		t.Fatal("expected the empty-cart message")
	}
}

func TestThankYouPlaceholder(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/thankyou", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "—") {
		t.Fatal("placeholder glyph expected when no order id is known")
	}
}

func TestBuyNowLeavesOnlyThatItem(t *testing.T) {
	app, deps := newTestApp(t)

	resp, err := app.Test(formReq("/cart/add", url.Values{"productId": {"1"}, "qty": {"3"}}, ""))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")

	resp, err = app.Test(formReq("/cart/buy", url.Values{"productId": {"6"}}, sid))
	if err != nil {
		t.Fatal(err)
	}
	if loc := resp.Header.Get("Location"); loc != "/checkout" {
		t.Fatalf("buy-now should land on checkout, got %q", loc)
	}
	items := deps.Cart.Items(sid)
	if len(items) != 1 || items[0].ID != 6 || items[0].Qty != 1 {
		t.Fatalf("buy-now should leave exactly the bought item: %+v", items)
	}
}

func TestDecrementRouteRemovesAtOne(t *testing.T) {
	app, deps := newTestApp(t)

	resp, err := app.Test(formReq("/cart/add", url.Values{"productId": {"4"}}, ""))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")

	if _, err = app.Test(formReq("/cart/dec", url.Values{"productId": {"4"}}, sid)); err != nil {
		t.Fatal(err)
	}
	if n := deps.Cart.Count(sid); n != 0 {
		t.Fatalf("want empty cart, got count %d", n)
	}
}
