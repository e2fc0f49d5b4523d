package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dairy-backend/internal/models"
	"dairy-backend/internal/timeutil"
)

// monthPrefix builds the ISO YYYY-MM prefix used to match entry dates.
// Month arrives as a string ("3" or "03"); it is zero-padded here.
func monthPrefix(month string, year int) string {
	m, err := strconv.Atoi(month)
	if err != nil {
		m = 0
	}
	return fmt.Sprintf("%04d-%02d", year, m)
}

// ListBills returns a snapshot copy of all generated bills.
func (s *Service) ListBills() []models.MonthlyBill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MonthlyBill(nil), s.doc.MonthlyBills...)
}

func (s *Service) GetBill(id string) (*models.MonthlyBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.MonthlyBills {
		if s.doc.MonthlyBills[i].ID == id {
			b := s.doc.MonthlyBills[i]
			b.Entries = append([]models.DailyEntry(nil), b.Entries...)
			return &b, nil
		}
	}
	return nil, ErrBillNotFound
}

// BillsForMonth returns the bills generated for one month/year.
func (s *Service) BillsForMonth(month string, year int) []models.MonthlyBill {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := monthPrefix(month, year)
	var out []models.MonthlyBill
	for _, b := range s.doc.MonthlyBills {
		if monthPrefix(b.Month, b.Year) == want {
			out = append(out, b)
		}
	}
	return out
}

// GenerateMonthlyBill derives an immutable bill snapshot: it selects
// the customer's entries whose date carries the month's YYYY-MM prefix,
// sums their amounts, folds in the customer's carried-over due, and
// appends the bill. Fails with ErrCustomerNotFound for an unknown
// customer and ErrNoEntriesForMonth when nothing matches; neither
// failure appends anything.
func (s *Service) GenerateMonthlyBill(ctx context.Context, customerID, month string, year int) (*models.MonthlyBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *models.Customer
	for i := range s.doc.Customers {
		if s.doc.Customers[i].ID == customerID {
			customer = &s.doc.Customers[i]
			break
		}
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	prefix := monthPrefix(month, year)
	var matched []models.DailyEntry
	for _, e := range s.doc.DailyEntries {
		if e.CustomerID == customerID && strings.HasPrefix(e.Date, prefix) {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoEntriesForMonth
	}

	var totalAmount float64
	for _, e := range matched {
		totalAmount += e.Amount
	}

	bill := models.MonthlyBill{
		ID:          s.nextID("bill"),
		CustomerID:  customerID,
		Month:       month,
		Year:        year,
		Entries:     matched,
		PreviousDue: customer.LastMonthDue,
		TotalAmount: totalAmount,
		GrandTotal:  totalAmount + customer.LastMonthDue,
		GeneratedAt: timeutil.Now().Format(timeutil.TimestampLayout),
	}

	s.doc.MonthlyBills = append(s.doc.MonthlyBills, bill)
	if err := s.persist(ctx); err != nil {
		s.doc.MonthlyBills = s.doc.MonthlyBills[:len(s.doc.MonthlyBills)-1]
		return nil, err
	}

	out := bill
	out.Entries = append([]models.DailyEntry(nil), bill.Entries...)
	return &out, nil
}

// DeleteBill removes one bill; returns whether it existed.
func (s *Service) DeleteBill(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.MonthlyBills {
		if s.doc.MonthlyBills[i].ID == id {
			s.doc.MonthlyBills = append(s.doc.MonthlyBills[:i], s.doc.MonthlyBills[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ClearAllBills empties the bill collection.
func (s *Service) ClearAllBills(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.doc.MonthlyBills
	s.doc.MonthlyBills = []models.MonthlyBill{}
	if err := s.persist(ctx); err != nil {
		s.doc.MonthlyBills = old
		return err
	}
	return nil
}
