package inventory

import (
	"context"
	"fmt"
)

// ProductService is the CRUD client for /products.
type ProductService struct {
	gw Gateway
}

// NewProductService returns a ProductService over the given gateway.
func NewProductService(gw Gateway) *ProductService {
	return &ProductService{gw: gw}
}

// GetAll lists every product.
func (s *ProductService) GetAll(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := s.gw.Get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one product.
func (s *ProductService) GetByID(ctx context.Context, id int) (Product, error) {
	var out Product
	if err := s.gw.Get(ctx, fmt.Sprintf("/products/%d", id), &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// Create adds a product after local validation.
func (s *ProductService) Create(ctx context.Context, p Product) (Product, error) {
	if err := Validate(p); err != nil {
		return Product{}, err
	}
	var out Product
	if err := s.gw.Post(ctx, "/products", p, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// Update replaces a product after local validation.
func (s *ProductService) Update(ctx context.Context, id int, p Product) (Product, error) {
	if err := Validate(p); err != nil {
		return Product{}, err
	}
	var out Product
	if err := s.gw.Put(ctx, fmt.Sprintf("/products/%d", id), p, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/products/%d", id))
}
