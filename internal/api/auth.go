package api

import (
	"context"
	"net/http"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and returns the bearer token plus
// the role and user id the token was issued for.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var creds domain.Credentials
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &creds)
	if err != nil {
		return nil, err
	}
	return &creds, nil
}
