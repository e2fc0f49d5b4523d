package ledger

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrEntryNotFound    = errors.New("daily entry not found")
	ErrBillNotFound     = errors.New("bill not found")

	// ErrNoEntriesForMonth means bill generation matched zero entries
	// for the requested customer and month.
	ErrNoEntriesForMonth = errors.New("no entries found for this customer in the selected month")
)
