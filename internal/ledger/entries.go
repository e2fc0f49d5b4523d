package ledger

import (
	"context"
	"time"

	"dairy-backend/internal/models"
	"dairy-backend/internal/timeutil"
)

// ListDailyEntries returns a snapshot copy of all daily entries.
func (s *Service) ListDailyEntries() []models.DailyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DailyEntry(nil), s.doc.DailyEntries...)
}

// EntriesForDate returns all entries on one calendar day.
func (s *Service) EntriesForDate(date string) []models.DailyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesForDateLocked(date)
}

func (s *Service) entriesForDateLocked(date string) []models.DailyEntry {
	var out []models.DailyEntry
	for _, e := range s.doc.DailyEntries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForCustomer returns all entries belonging to one customer.
func (s *Service) EntriesForCustomer(customerID string) []models.DailyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.DailyEntry
	for _, e := range s.doc.DailyEntries {
		if e.CustomerID == customerID {
			out = append(out, e)
		}
	}
	return out
}

// AddDailyEntry appends one entry, deriving amount = quantity * rate.
// The store does not enforce (customer, product, date) uniqueness; the
// whole-date replace flow is what keeps the editing grid unique.
func (s *Service) AddDailyEntry(ctx context.Context, req *models.CreateDailyEntryRequest) (*models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.buildEntry(req)
	s.doc.DailyEntries = append(s.doc.DailyEntries, entry)
	if err := s.persist(ctx); err != nil {
		s.doc.DailyEntries = s.doc.DailyEntries[:len(s.doc.DailyEntries)-1]
		return nil, err
	}
	return &entry, nil
}

func (s *Service) buildEntry(req *models.CreateDailyEntryRequest) models.DailyEntry {
	return models.DailyEntry{
		ID:         s.nextID("entry"),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Date:       req.Date,
		Quantity:   req.Quantity,
		Rate:       req.Rate,
		Amount:     req.Quantity * req.Rate,
		Notes:      req.Notes,
	}
}

// UpdateDailyEntry merges non-nil patch fields and recomputes amount
// whenever quantity or rate changed.
func (s *Service) UpdateDailyEntry(ctx context.Context, id string, patch *models.DailyEntryPatch) (*models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.DailyEntries {
		if s.doc.DailyEntries[i].ID != id {
			continue
		}
		e := &s.doc.DailyEntries[i]
		if patch.CustomerID != nil {
			e.CustomerID = *patch.CustomerID
		}
		if patch.ProductID != nil {
			e.ProductID = *patch.ProductID
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.Quantity != nil {
			e.Quantity = *patch.Quantity
		}
		if patch.Rate != nil {
			e.Rate = *patch.Rate
		}
		if patch.Quantity != nil || patch.Rate != nil {
			e.Amount = e.Quantity * e.Rate
		}
		if patch.Notes != nil {
			e.Notes = *patch.Notes
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		out := *e
		return &out, nil
	}
	return nil, ErrEntryNotFound
}

// DeleteDailyEntry removes one entry; returns whether it existed.
func (s *Service) DeleteDailyEntry(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.DailyEntries {
		if s.doc.DailyEntries[i].ID == id {
			s.doc.DailyEntries = append(s.doc.DailyEntries[:i], s.doc.DailyEntries[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ReplaceEntriesForDate deletes every entry on the date and re-adds the
// supplied set in one persisted step. This is how the daily editing
// grid saves: wholesale replace, not per-row diffs.
func (s *Service) ReplaceEntriesForDate(ctx context.Context, date string, reqs []models.CreateDailyEntryRequest) ([]models.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.DailyEntry, 0, len(s.doc.DailyEntries))
	for _, e := range s.doc.DailyEntries {
		if e.Date != date {
			kept = append(kept, e)
		}
	}

	added := make([]models.DailyEntry, 0, len(reqs))
	for i := range reqs {
		req := reqs[i]
		req.Date = date
		entry := s.buildEntry(&req)
		kept = append(kept, entry)
		added = append(added, entry)
	}

	old := s.doc.DailyEntries
	s.doc.DailyEntries = kept
	if err := s.persist(ctx); err != nil {
		s.doc.DailyEntries = old
		return nil, err
	}
	return added, nil
}

// CopyYesterday clones all entries of the day before targetDate onto
// targetDate, preserving quantity, rate, amount and notes.
func (s *Service) CopyYesterday(ctx context.Context, targetDate string) ([]models.DailyEntry, error) {
	day, err := time.ParseInLocation(timeutil.DateLayout, targetDate, timeutil.IST)
	if err != nil {
		return nil, err
	}
	yesterday := day.AddDate(0, 0, -1).Format(timeutil.DateLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.entriesForDateLocked(yesterday)
	copied := make([]models.DailyEntry, 0, len(source))
	for _, e := range source {
		entry := s.buildEntry(&models.CreateDailyEntryRequest{
			CustomerID: e.CustomerID,
			ProductID:  e.ProductID,
			Date:       targetDate,
			Quantity:   e.Quantity,
			Rate:       e.Rate,
			Notes:      e.Notes,
		})
		s.doc.DailyEntries = append(s.doc.DailyEntries, entry)
		copied = append(copied, entry)
	}

	if len(copied) > 0 {
		if err := s.persist(ctx); err != nil {
			s.doc.DailyEntries = s.doc.DailyEntries[:len(s.doc.DailyEntries)-len(copied)]
			return nil, err
		}
	}
	return copied, nil
}
