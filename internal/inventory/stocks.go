package inventory

import (
	"context"
	"fmt"
)

// StockService is the client for /stocks. Stock rows are created alongside
// products and never deleted directly, so there is no Delete here.
type StockService struct {
	gw Gateway
}

// NewStockService returns a StockService over the given gateway.
func NewStockService(gw Gateway) *StockService {
	return &StockService{gw: gw}
}

// GetAll lists every stock row.
func (s *StockService) GetAll(ctx context.Context) ([]Stock, error) {
	var out []Stock
	if err := s.gw.Get(ctx, "/stocks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one stock row.
func (s *StockService) GetByID(ctx context.Context, id int) (Stock, error) {
	var out Stock
	if err := s.gw.Get(ctx, fmt.Sprintf("/stocks/%d", id), &out); err != nil {
		return Stock{}, err
	}
	return out, nil
}

// Create adds a stock row after local validation.
func (s *StockService) Create(ctx context.Context, st Stock) (Stock, error) {
	if err := Validate(st); err != nil {
		return Stock{}, err
	}
	var out Stock
	if err := s.gw.Post(ctx, "/stocks", st, &out); err != nil {
		return Stock{}, err
	}
	return out, nil
}

// UpdateQuantity sets the quantity for a stock row. The wire format is the
// bare JSON number, not an object.
func (s *StockService) UpdateQuantity(ctx context.Context, id, quantity int) (Stock, error) {
	if quantity < 0 {
		return Stock{}, fmt.Errorf("quantity must be at least 0")
	}
	var out Stock
	if err := s.gw.Put(ctx, fmt.Sprintf("/stocks/%d", id), quantity, &out); err != nil {
		return Stock{}, err
	}
	return out, nil
}
