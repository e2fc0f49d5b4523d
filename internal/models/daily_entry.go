package models

// DailyEntry is one (customer, product, calendar day) sale record.
// Amount is always recomputed as quantity * rate by the ledger service;
// it is stored rather than derived so bills can snapshot it by value.
type DailyEntry struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	Amount     float64 `json:"amount"`
	Notes      string  `json:"notes,omitempty"`
}

// CreateDailyEntryRequest represents the request body for creating a daily entry
type CreateDailyEntryRequest struct {
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	Date       string  `json:"date"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	Notes      string  `json:"notes"`
}

// DailyEntryPatch carries a partial update; nil fields are left unchanged.
type DailyEntryPatch struct {
	CustomerID *string  `json:"customerId"`
	ProductID  *string  `json:"productId"`
	Date       *string  `json:"date"`
	Quantity   *float64 `json:"quantity"`
	Rate       *float64 `json:"rate"`
	Notes      *string  `json:"notes"`
}

// ReplaceDateRequest replaces every entry on one date with the given set
// (the daily grid saves by wholesale replace, not per-row diffs).
type ReplaceDateRequest struct {
	Date    string                   `json:"date"`
	Entries []CreateDailyEntryRequest `json:"entries"`
}

// CopyYesterdayRequest clones the previous day's entries onto TargetDate.
type CopyYesterdayRequest struct {
	TargetDate string `json:"targetDate"`
}
