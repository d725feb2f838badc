package order

// PlaceOrderLine is one requested product reference.
// swagger:model PlaceOrderLine
type PlaceOrderLine struct {
	ProductID string `json:"product_id" binding:"required,uuid" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity  int    `json:"quantity" binding:"required,min=1" example:"2"`
}

// PlaceOrderRequest is the order placement payload.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	CustomerID string           `json:"customer_id" binding:"required,uuid" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Items      []PlaceOrderLine `json:"items" binding:"required,min=1,dive"`
}
