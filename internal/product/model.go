package product

import "time"

type Product struct {
	ID   string `json:"id"`
	Name string `json:"product_name"`
	// Price travels as a string to avoid rounding errors (NUMERIC in Postgres)
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch lists the mutable fields of a product. Nil means "leave unchanged".
type Patch struct {
	Name  *string
	Price *string
	Stock *int
}

// CreateProductRequest is the creation payload.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name  string `json:"product_name" binding:"required,max=100" example:"Mechanical Keyboard"`
	Price string `json:"price" binding:"required,money" example:"199.90"`
	Stock int    `json:"stock" binding:"min=0" example:"10"`
}

// UpdateProductRequest is the partial update payload; omitted fields are
// left unchanged.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name  *string `json:"product_name" binding:"omitempty,min=1,max=100"`
	Price *string `json:"price" binding:"omitempty,money"`
	Stock *int    `json:"stock" binding:"omitempty,min=0"`
}

func (r UpdateProductRequest) Patch() Patch {
	return Patch{Name: r.Name, Price: r.Price, Stock: r.Stock}
}
