package inventory

import (
	"context"
	"sort"
	"sync"
)

// LowStockThreshold marks quantities that warrant a restock warning.
const LowStockThreshold = 10

// Summary is the dashboard overview: headline counts plus the products
// running low, sorted by quantity ascending. LowStockCount always equals
// len(LowStock); both come from the same product-stock join.
type Summary struct {
	ProductCount  int
	CategoryCount int
	TotalUnits    int
	LowStockCount int
	LowStock      []Product
}

// DashboardService aggregates the dashboard numbers from the product,
// stock, and category lists.
type DashboardService struct {
	products   *ProductService
	stocks     *StockService
	categories *CategoryService
}

// NewDashboardService returns a DashboardService over the given services.
func NewDashboardService(p *ProductService, s *StockService, c *CategoryService) *DashboardService {
	return &DashboardService{products: p, stocks: s, categories: c}
}

// Summary fetches the three lists concurrently and folds them into the
// overview. Any fetch failure fails the whole summary.
func (d *DashboardService) Summary(ctx context.Context) (Summary, error) {
	var (
		wg         sync.WaitGroup
		products   []Product
		stocks     []Stock
		categories []Category
		errP       error
		errS       error
		errC       error
	)
	wg.Add(3)
	go func() { defer wg.Done(); products, errP = d.products.GetAll(ctx) }()
	go func() { defer wg.Done(); stocks, errS = d.stocks.GetAll(ctx) }()
	go func() { defer wg.Done(); categories, errC = d.categories.GetAll(ctx) }()
	wg.Wait()

	for _, err := range []error{errP, errS, errC} {
		if err != nil {
			return Summary{}, err
		}
	}
	return buildSummary(products, stocks, categories), nil
}

// buildSummary joins stocks to products by ProductID so the low-stock count
// and the low-stock table cannot disagree. The stock list wins over a stale
// embedded Stock; a product the backend returned without either is skipped.
func buildSummary(products []Product, stocks []Stock, categories []Category) Summary {
	s := Summary{
		ProductCount:  len(products),
		CategoryCount: len(categories),
	}
	byProduct := make(map[int]Stock, len(stocks))
	for _, st := range stocks {
		s.TotalUnits += st.Quantity
		byProduct[st.ProductID] = st
	}
	for _, p := range products {
		st, ok := byProduct[p.ID]
		if !ok {
			if p.Stock == nil {
				continue
			}
			st = *p.Stock
		}
		if st.Quantity >= LowStockThreshold {
			continue
		}
		joined := st
		p.Stock = &joined
		s.LowStock = append(s.LowStock, p)
	}
	sort.Slice(s.LowStock, func(i, j int) bool {
		return s.LowStock[i].Stock.Quantity < s.LowStock[j].Stock.Quantity
	})
	s.LowStockCount = len(s.LowStock)
	return s
}
