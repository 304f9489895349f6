package api

import (
	"context"

	"github.com/go-resty/resty/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and stores it in the auth
// context. This is the only unauthenticated call the client makes.
func (c *Client) Login(ctx context.Context, email, password string) error {
	req := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Email: email, Password: password})

	var out loginResponse
	if err := c.execute(req, resty.MethodPost, "/users/admin-login", &out, "Email or Password is wrong"); err != nil {
		return err
	}
	return c.auth.SetToken(out.Token)
}
