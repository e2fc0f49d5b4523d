package models

type Customer struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone,omitempty"`
	Address      string  `json:"address,omitempty"`
	LastMonthDue float64 `json:"lastMonthDue"`
	CreatedAt    string  `json:"createdAt"`
}

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	LastMonthDue float64 `json:"lastMonthDue"`
}

// CustomerPatch carries a partial update; nil fields are left unchanged.
type CustomerPatch struct {
	Name         *string  `json:"name"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	LastMonthDue *float64 `json:"lastMonthDue"`
}
