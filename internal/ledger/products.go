package ledger

import (
	"context"

	"dairy-backend/internal/models"
)

// ListProducts returns a snapshot copy of the product catalog.
func (s *Service) ListProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.doc.Products...)
}

func (s *Service) GetProduct(id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			p := s.doc.Products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *Service) AddProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:       s.nextID("product"),
		Name:     req.Name,
		Rate:     req.Rate,
		Unit:     req.Unit,
		Category: req.Category,
	}

	s.doc.Products = append(s.doc.Products, product)
	if err := s.persist(ctx); err != nil {
		s.doc.Products = s.doc.Products[:len(s.doc.Products)-1]
		return nil, err
	}
	return &product, nil
}

// UpdateProduct merges non-nil patch fields. Changing the rate touches
// the catalog default only; existing daily entries keep the rate they
// were written with.
func (s *Service) UpdateProduct(ctx context.Context, id string, patch *models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Products {
		if s.doc.Products[i].ID != id {
			continue
		}
		p := &s.doc.Products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Rate != nil {
			p.Rate = *patch.Rate
		}
		if patch.Unit != nil {
			p.Unit = *patch.Unit
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		out := *p
		return &out, nil
	}
	return nil, ErrProductNotFound
}

// DeleteProduct removes the product and cascades deletion of every
// daily entry referencing it. Returns whether a product was removed.
func (s *Service) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	s.doc.Products = append(s.doc.Products[:idx], s.doc.Products[idx+1:]...)

	kept := s.doc.DailyEntries[:0]
	for _, e := range s.doc.DailyEntries {
		if e.ProductID != id {
			kept = append(kept, e)
		}
	}
	s.doc.DailyEntries = kept

	if err := s.persist(ctx); err != nil {
		return false, err
	}
	return true, nil
}
