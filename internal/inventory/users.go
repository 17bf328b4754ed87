package inventory

import (
	"context"
	"fmt"
)

// UserService is the CRUD client for /users, the admin-only screen.
// Role changes go through the dedicated PATCH endpoint.
type UserService struct {
	gw Gateway
}

// NewUserService returns a UserService over the given gateway.
func NewUserService(gw Gateway) *UserService {
	return &UserService{gw: gw}
}

// GetAll lists every account.
func (s *UserService) GetAll(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.gw.Get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one account.
func (s *UserService) GetByID(ctx context.Context, id int) (User, error) {
	var out User
	if err := s.gw.Get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Create adds an account after local validation.
func (s *UserService) Create(ctx context.Context, u User) (User, error) {
	if err := Validate(u); err != nil {
		return User{}, err
	}
	var out User
	if err := s.gw.Post(ctx, "/users", u, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Update replaces an account after local validation.
func (s *UserService) Update(ctx context.Context, id int, u User) (User, error) {
	if err := Validate(u); err != nil {
		return User{}, err
	}
	var out User
	if err := s.gw.Put(ctx, fmt.Sprintf("/users/%d", id), u, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

// ChangeRole switches an account between USER and ADMIN via
// PATCH /users/{id}/role.
func (s *UserService) ChangeRole(ctx context.Context, id int, role Role) (User, error) {
	if role != RoleUser && role != RoleAdmin {
		return User{}, fmt.Errorf("role must be one of: USER ADMIN")
	}
	body := struct {
		Role Role `json:"role"`
	}{Role: role}
	var out User
	if err := s.gw.Patch(ctx, fmt.Sprintf("/users/%d/role", id), body, &out); err != nil {
		return User{}, err
	}
	return out, nil
}
