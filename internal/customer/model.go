package customer

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"customer_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch lists the mutable fields of a customer. Nil means "leave unchanged".
type Patch struct {
	Name  *string
	Email *string
	Phone *string
}

// CreateCustomerRequest is the creation payload.
// swagger:model CreateCustomerRequest
type CreateCustomerRequest struct {
	Name  string `json:"customer_name" binding:"required,max=75" example:"Ada Lovelace"`
	Email string `json:"email" binding:"omitempty,email,max=150" example:"ada@example.com"`
	Phone string `json:"phone" binding:"max=16" example:"+49301234567"`
}

// UpdateCustomerRequest is the partial update payload; omitted fields are
// left unchanged.
// swagger:model UpdateCustomerRequest
type UpdateCustomerRequest struct {
	Name  *string `json:"customer_name" binding:"omitempty,min=1,max=75"`
	Email *string `json:"email" binding:"omitempty,email,max=150"`
	Phone *string `json:"phone" binding:"omitempty,max=16"`
}

func (r UpdateCustomerRequest) Patch() Patch {
	return Patch{Name: r.Name, Email: r.Email, Phone: r.Phone}
}
