package order

import "time"

type Order struct {
	ID string `json:"id"`
	// OrderDate is the calendar date of placement (DATE in Postgres)
	OrderDate  string    `json:"order_date"`
	CustomerID string    `json:"customer_id"`
	Total      string    `json:"total"`
	Items      []Item    `json:"items,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Item is one order line. UnitPrice is the product price captured at the
// time of sale; the live product price may change afterwards.
type Item struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}
