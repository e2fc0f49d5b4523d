package models

// MonthlyBill is an immutable snapshot: Entries are copied by value at
// generation time and never recomputed when daily entries change later.
// GrandTotal = TotalAmount + PreviousDue.
type MonthlyBill struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"customerId"`
	Month       string       `json:"month"` // "1".."12" as entered, zero-padded for matching
	Year        int          `json:"year"`
	Entries     []DailyEntry `json:"entries"`
	PreviousDue float64      `json:"previousDue"`
	TotalAmount float64      `json:"totalAmount"`
	GrandTotal  float64      `json:"grandTotal"`
	GeneratedAt string       `json:"generatedAt"`
}

// GenerateBillRequest represents the request body for bill generation
type GenerateBillRequest struct {
	CustomerID string `json:"customerId"`
	Month      string `json:"month"`
	Year       int    `json:"year"`
}
