// Package inventory provides typed clients for the DamaFashion inventory
// REST API: authentication, products, categories, suppliers, stock levels,
// and user administration. All requests flow through the api gateway; input
// validation runs before any network call.
package inventory

// Role is a user's authorization level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is an account in the admin panel. Password is only populated on
// create/update requests and never returned by the API.
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password,omitempty" validate:"omitempty,strongpass"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
}

// AuthRequest carries login credentials.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is the login reply: a single opaque bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// Category groups products.
type Category struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}

// Supplier is a product source with a contact line.
type Supplier struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

// Stock is the on-hand quantity for one product.
type Stock struct {
	ID        int `json:"id,omitempty"`
	Quantity  int `json:"quantity" validate:"gte=0"`
	ProductID int `json:"productId" validate:"required,gt=0"`
}

// Product is a sellable item. Stock is populated on reads when the backend
// joins it in; it is never sent on writes.
type Product struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Description string  `json:"description,omitempty"`
	CategoryID  int     `json:"categoryId" validate:"required,gt=0"`
	SupplierID  int     `json:"supplierId" validate:"required,gt=0"`
	Stock       *Stock  `json:"stock,omitempty" validate:"-"`
}
