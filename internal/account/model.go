package account

import "time"

// CustomerAccount is the login identity attached to a customer. The bcrypt
// hash never leaves the process.
type CustomerAccount struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Patch lists the mutable fields of an account. Nil means "leave unchanged".
type Patch struct {
	Username     *string
	PasswordHash *string
}

// CreateAccountRequest is the creation payload. The customer must already
// exist.
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid" example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Username   string `json:"username" binding:"required,max=50" example:"ada"`
	Password   string `json:"password" binding:"required,min=8,max=72" example:"correct-horse"`
}

// UpdateAccountRequest is the partial update payload; omitted fields are
// left unchanged.
// swagger:model UpdateAccountRequest
type UpdateAccountRequest struct {
	Username *string `json:"username" binding:"omitempty,min=1,max=50"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}
