package ledger

import (
	"context"

	"dairy-backend/internal/models"
	"dairy-backend/internal/timeutil"
)

// ListCustomers returns a snapshot copy of the customer collection.
func (s *Service) ListCustomers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Customer(nil), s.doc.Customers...)
}

func (s *Service) GetCustomer(id string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Customers {
		if s.doc.Customers[i].ID == id {
			c := s.doc.Customers[i]
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// AddCustomer appends a new customer. No validation beyond what the
// caller supplies; an empty name is accepted, as in the original app.
func (s *Service) AddCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer := models.Customer{
		ID:           s.nextID("customer"),
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		LastMonthDue: req.LastMonthDue,
		CreatedAt:    timeutil.Now().Format(timeutil.TimestampLayout),
	}

	s.doc.Customers = append(s.doc.Customers, customer)
	if err := s.persist(ctx); err != nil {
		s.doc.Customers = s.doc.Customers[:len(s.doc.Customers)-1]
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer merges non-nil patch fields into the record at its
// current position. Returns ErrCustomerNotFound for unknown ids.
func (s *Service) UpdateCustomer(ctx context.Context, id string, patch *models.CustomerPatch) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Customers {
		if s.doc.Customers[i].ID != id {
			continue
		}
		c := &s.doc.Customers[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.LastMonthDue != nil {
			c.LastMonthDue = *patch.LastMonthDue
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		out := *c
		return &out, nil
	}
	return nil, ErrCustomerNotFound
}

// DeleteCustomer removes the customer and cascades deletion of every
// daily entry referencing it. Monthly bills are left alone: a bill may
// dangle on a removed customer (readers label it "Unknown Customer").
// Returns whether a customer was actually removed.
func (s *Service) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.doc.Customers {
		if s.doc.Customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	s.doc.Customers = append(s.doc.Customers[:idx], s.doc.Customers[idx+1:]...)

	kept := s.doc.DailyEntries[:0]
	for _, e := range s.doc.DailyEntries {
		if e.CustomerID != id {
			kept = append(kept, e)
		}
	}
	s.doc.DailyEntries = kept

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	return true, nil
}
