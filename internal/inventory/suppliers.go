package inventory

import (
	"context"
	"fmt"
)

// SupplierService is the CRUD client for /suppliers.
type SupplierService struct {
	gw Gateway
}

// NewSupplierService returns a SupplierService over the given gateway.
func NewSupplierService(gw Gateway) *SupplierService {
	return &SupplierService{gw: gw}
}

// GetAll lists every supplier.
func (s *SupplierService) GetAll(ctx context.Context) ([]Supplier, error) {
	var out []Supplier
	if err := s.gw.Get(ctx, "/suppliers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one supplier.
func (s *SupplierService) GetByID(ctx context.Context, id int) (Supplier, error) {
	var out Supplier
	if err := s.gw.Get(ctx, fmt.Sprintf("/suppliers/%d", id), &out); err != nil {
		return Supplier{}, err
	}
	return out, nil
}

// Create adds a supplier after local validation.
func (s *SupplierService) Create(ctx context.Context, sup Supplier) (Supplier, error) {
	if err := Validate(sup); err != nil {
		return Supplier{}, err
	}
	var out Supplier
	if err := s.gw.Post(ctx, "/suppliers", sup, &out); err != nil {
		return Supplier{}, err
	}
	return out, nil
}

// Update replaces a supplier after local validation.
func (s *SupplierService) Update(ctx context.Context, id int, sup Supplier) (Supplier, error) {
	if err := Validate(sup); err != nil {
		return Supplier{}, err
	}
	var out Supplier
	if err := s.gw.Put(ctx, fmt.Sprintf("/suppliers/%d", id), sup, &out); err != nil {
		return Supplier{}, err
	}
	return out, nil
}

// Delete removes a supplier.
func (s *SupplierService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/suppliers/%d", id))
}
