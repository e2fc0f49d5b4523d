package models

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// ProductPatch carries a partial update; nil fields are left unchanged.
// Rate here changes the default price only, never existing entries.
type ProductPatch struct {
	Name     *string  `json:"name"`
	Rate     *float64 `json:"rate"`
	Unit     *string  `json:"unit"`
	Category *string  `json:"category"`
}
