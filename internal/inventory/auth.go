package inventory

import "context"

// AuthService talks to the authentication endpoints. The session controller
// is its main consumer.
type AuthService struct {
	gw Gateway
}

// NewAuthService returns an AuthService over the given gateway.
func NewAuthService(gw Gateway) *AuthService {
	return &AuthService{gw: gw}
}

// Login exchanges credentials for a bearer token via POST /auth/login.
// Credentials are validated locally first; invalid input never reaches the
// network.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	req := AuthRequest{Username: username, Password: password}
	if err := Validate(req); err != nil {
		return "", err
	}
	var resp AuthResponse
	if err := s.gw.Post(ctx, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// CurrentUser fetches the authenticated user via GET /users/me.
func (s *AuthService) CurrentUser(ctx context.Context) (User, error) {
	var u User
	if err := s.gw.Get(ctx, "/users/me", &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Register creates a new account via POST /users.
func (s *AuthService) Register(ctx context.Context, u User) (User, error) {
	if err := Validate(u); err != nil {
		return User{}, err
	}
	var created User
	if err := s.gw.Post(ctx, "/users", u, &created); err != nil {
		return User{}, err
	}
	return created, nil
}
