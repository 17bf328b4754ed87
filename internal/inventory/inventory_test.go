package inventory

import (
	"context"
	"strings"
	"testing"
)

// fakeGateway records the last call and replies with canned data.
type fakeGateway struct {
	method string
	path   string
	body   any
	calls  int
	err    error
}

func (f *fakeGateway) record(method, path string, body any) error {
	f.method, f.path, f.body = method, path, body
	f.calls++
	return f.err
}

func (f *fakeGateway) Get(_ context.Context, path string, out any) error {
	return f.record("GET", path, nil)
}
func (f *fakeGateway) Post(_ context.Context, path string, body, out any) error {
	return f.record("POST", path, body)
}
func (f *fakeGateway) Put(_ context.Context, path string, body, out any) error {
	return f.record("PUT", path, body)
}
func (f *fakeGateway) Patch(_ context.Context, path string, body, out any) error {
	return f.record("PATCH", path, body)
}
func (f *fakeGateway) Delete(_ context.Context, path string) error {
	return f.record("DELETE", path, nil)
}

func TestServicePaths(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(gw *fakeGateway) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "products list",
			call: func(gw *fakeGateway) error {
				_, err := NewProductService(gw).GetAll(ctx)
				return err
			},
			wantMethod: "GET", wantPath: "/products",
		},
		{
			name: "product by id",
			call: func(gw *fakeGateway) error {
				_, err := NewProductService(gw).GetByID(ctx, 7)
				return err
			},
			wantMethod: "GET", wantPath: "/products/7",
		},
		{
			name: "product delete",
			call: func(gw *fakeGateway) error {
				return NewProductService(gw).Delete(ctx, 7)
			},
			wantMethod: "DELETE", wantPath: "/products/7",
		},
		{
			name: "category by id",
			call: func(gw *fakeGateway) error {
				_, err := NewCategoryService(gw).GetByID(ctx, 3)
				return err
			},
			wantMethod: "GET", wantPath: "/categories/3",
		},
		{
			name: "category update",
			call: func(gw *fakeGateway) error {
				_, err := NewCategoryService(gw).Update(ctx, 3, Category{Name: "Vestidos"})
				return err
			},
			wantMethod: "PUT", wantPath: "/categories/3",
		},
		{
			name: "supplier create",
			call: func(gw *fakeGateway) error {
				_, err := NewSupplierService(gw).Create(ctx, Supplier{Name: "Tecidos SA", Contact: "maria@tecidos.br"})
				return err
			},
			wantMethod: "POST", wantPath: "/suppliers",
		},
		{
			name: "stock list",
			call: func(gw *fakeGateway) error {
				_, err := NewStockService(gw).GetAll(ctx)
				return err
			},
			wantMethod: "GET", wantPath: "/stocks",
		},
		{
			name: "users list uses canonical base path",
			call: func(gw *fakeGateway) error {
				_, err := NewUserService(gw).GetAll(ctx)
				return err
			},
			wantMethod: "GET", wantPath: "/users",
		},
		{
			name: "current user",
			call: func(gw *fakeGateway) error {
				_, err := NewAuthService(gw).CurrentUser(ctx)
				return err
			},
			wantMethod: "GET", wantPath: "/users/me",
		},
		{
			name: "login",
			call: func(gw *fakeGateway) error {
				_, err := NewAuthService(gw).Login(ctx, "ana", "pw")
				return err
			},
			wantMethod: "POST", wantPath: "/auth/login",
		},
		{
			name: "role change",
			call: func(gw *fakeGateway) error {
				_, err := NewUserService(gw).ChangeRole(ctx, 4, RoleAdmin)
				return err
			},
			wantMethod: "PATCH", wantPath: "/users/4/role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			if err := tt.call(gw); err != nil {
				t.Fatalf("call: %v", err)
			}
			if gw.method != tt.wantMethod || gw.path != tt.wantPath {
				t.Errorf("got %s %s, want %s %s", gw.method, gw.path, tt.wantMethod, tt.wantPath)
			}
		})
	}
}

func TestValidationFailuresNeverReachTheGateway(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(gw *fakeGateway) error
		wantMsg string
	}{
		{
			name: "product missing name",
			call: func(gw *fakeGateway) error {
				_, err := NewProductService(gw).Create(ctx, Product{Price: 10, CategoryID: 1, SupplierID: 1})
				return err
			},
			wantMsg: "name is required",
		},
		{
			name: "product price not positive",
			call: func(gw *fakeGateway) error {
				_, err := NewProductService(gw).Create(ctx, Product{Name: "Saia", CategoryID: 1, SupplierID: 1})
				return err
			},
			wantMsg: "price must be greater than",
		},
		{
			name: "login empty username",
			call: func(gw *fakeGateway) error {
				_, err := NewAuthService(gw).Login(ctx, "", "pw")
				return err
			},
			wantMsg: "username is required",
		},
		{
			name: "user weak password",
			call: func(gw *fakeGateway) error {
				_, err := NewUserService(gw).Create(ctx, User{Username: "bob", Password: "short"})
				return err
			},
			wantMsg: "password must have 8+ characters",
		},
		{
			name: "invalid role",
			call: func(gw *fakeGateway) error {
				_, err := NewUserService(gw).ChangeRole(ctx, 1, Role("ROOT"))
				return err
			},
			wantMsg: "role must be one of",
		},
		{
			name: "negative quantity",
			call: func(gw *fakeGateway) error {
				_, err := NewStockService(gw).UpdateQuantity(ctx, 1, -1)
				return err
			},
			wantMsg: "quantity must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{}
			err := tt.call(gw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want substring %q", err, tt.wantMsg)
			}
			if gw.calls != 0 {
				t.Errorf("gateway called %d times for invalid input", gw.calls)
			}
		})
	}
}

func TestStockUpdateSendsBareQuantity(t *testing.T) {
	gw := &fakeGateway{}
	if _, err := NewStockService(gw).UpdateQuantity(context.Background(), 5, 42); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if gw.path != "/stocks/5" {
		t.Fatalf("path = %s", gw.path)
	}
	if q, ok := gw.body.(int); !ok || q != 42 {
		t.Fatalf("body = %#v, want bare 42", gw.body)
	}
}

func TestBuildSummary(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Vestido", Stock: &Stock{Quantity: 3}},
		{ID: 2, Name: "Saia", Stock: &Stock{Quantity: 15}},
		{ID: 3, Name: "Blusa", Stock: &Stock{Quantity: 1}},
		{ID: 4, Name: "Calça"}, // backend did not embed the stock here
	}
	stocks := []Stock{
		{ID: 1, Quantity: 3, ProductID: 1},
		{ID: 2, Quantity: 15, ProductID: 2},
		{ID: 3, Quantity: 1, ProductID: 3},
		{ID: 4, Quantity: 2, ProductID: 4},
	}
	categories := []Category{{ID: 1, Name: "Roupas"}}

	s := buildSummary(products, stocks, categories)

	if s.ProductCount != 4 || s.CategoryCount != 1 {
		t.Fatalf("counts: %+v", s)
	}
	if s.TotalUnits != 21 {
		t.Fatalf("TotalUnits = %d, want 21", s.TotalUnits)
	}
	if len(s.LowStock) != 3 ||
		s.LowStock[0].Name != "Blusa" || s.LowStock[1].Name != "Calça" || s.LowStock[2].Name != "Vestido" {
		t.Fatalf("LowStock order wrong: %+v", s.LowStock)
	}
	if s.LowStockCount != len(s.LowStock) {
		t.Fatalf("LowStockCount = %d, table has %d rows", s.LowStockCount, len(s.LowStock))
	}
	// Calça had no embedded stock; the join must have supplied it.
	if s.LowStock[1].Stock == nil || s.LowStock[1].Stock.Quantity != 2 {
		t.Fatalf("joined stock missing: %+v", s.LowStock[1])
	}
}

func TestBuildSummaryStockListWinsOverEmbedded(t *testing.T) {
	products := []Product{
		{ID: 1, Name: "Vestido", Stock: &Stock{Quantity: 50}}, // stale embed
	}
	stocks := []Stock{{ID: 1, Quantity: 4, ProductID: 1}}

	s := buildSummary(products, stocks, nil)

	if s.LowStockCount != 1 || len(s.LowStock) != 1 {
		t.Fatalf("summary: %+v", s)
	}
	if s.LowStock[0].Stock.Quantity != 4 {
		t.Fatalf("quantity = %d, want the stock list's 4", s.LowStock[0].Stock.Quantity)
	}
}
