package domain

// Product is a catalog entry. The catalog is fixed at process start and
// never mutated; prices are whole rupees.
type Product struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Img      string `json:"img"`
}

// LineItem is one product row in a cart. Title, price and image are copied
// from the product at add time and are not kept in sync afterwards.
// Qty is always >= 1; a line that would reach 0 is removed instead.
type LineItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
	Img   string `json:"img"`
	Qty   int    `json:"qty"`
}

// Order is an immutable snapshot of a completed checkout.
type Order struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PaymentMode string     `json:"paymentMode"`
	Items       []LineItem `json:"items"`
	Subtotal    int        `json:"subtotal"`
	Shipping    int        `json:"shipping"`
	Total       int        `json:"total"`
	CreatedAt   string     `json:"createdAt"`
}
