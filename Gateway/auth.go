package Gateway

import (
	"context"
	"net/http"

	"Momentum/Models"
)

// Credentials is the login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the signup body.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Login signs in against the backend. The session cookie lands in the
// client's jar and credentials every later call.
func (c *Client) Login(ctx context.Context, email, password string) (Models.User, error) {
	var user Models.User
	if err := c.do(ctx, http.MethodPost, "/login", Credentials{Email: email, Password: password}, &user); err != nil {
		return Models.User{}, err
	}
	return user, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, reg Registration) (Models.User, error) {
	var user Models.User
	if err := c.do(ctx, http.MethodPost, "/register", reg, &user); err != nil {
		return Models.User{}, err
	}
	return user, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// UpdateProfile updates the signed-in user's profile.
func (c *Client) UpdateProfile(ctx context.Context, user Models.User) (Models.User, error) {
	var updated Models.User
	if err := c.do(ctx, http.MethodPut, "/profile", user, &updated); err != nil {
		return Models.User{}, err
	}
	return updated, nil
}
