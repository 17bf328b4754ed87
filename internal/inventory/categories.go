package inventory

import (
	"context"
	"fmt"
)

// CategoryService is the CRUD client for /categories.
type CategoryService struct {
	gw Gateway
}

// NewCategoryService returns a CategoryService over the given gateway.
func NewCategoryService(gw Gateway) *CategoryService {
	return &CategoryService{gw: gw}
}

// GetAll lists every category.
func (s *CategoryService) GetAll(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := s.gw.Get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one category.
func (s *CategoryService) GetByID(ctx context.Context, id int) (Category, error) {
	var out Category
	if err := s.gw.Get(ctx, fmt.Sprintf("/categories/%d", id), &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

// Create adds a category after local validation.
func (s *CategoryService) Create(ctx context.Context, c Category) (Category, error) {
	if err := Validate(c); err != nil {
		return Category{}, err
	}
	var out Category
	if err := s.gw.Post(ctx, "/categories", c, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

// Update replaces a category after local validation.
func (s *CategoryService) Update(ctx context.Context, id int, c Category) (Category, error) {
	if err := Validate(c); err != nil {
		return Category{}, err
	}
	var out Category
	if err := s.gw.Put(ctx, fmt.Sprintf("/categories/%d", id), c, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
