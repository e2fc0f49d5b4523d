package models

// Document is the whole persisted state: one JSON object, loaded at
// startup and rewritten in full on every mutation.
type Document struct {
	User         User          `json:"user"`
	Customers    []Customer    `json:"customers"`
	Products     []Product     `json:"products"`
	DailyEntries []DailyEntry  `json:"dailyEntries"`
	MonthlyBills []MonthlyBill `json:"monthlyBills"`
}
