package client

import (
	"context"
	"net/http"

	"github.com/shortenurl/web/internal/model"
)

// Credential-submitting calls skip the refresh path: a 401 there means bad
// credentials, not an expired session.

func (c *Client) SignIn(ctx context.Context, in model.LoginInput) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/auth/sign-in", in, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SignUp(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/auth/sign-up", in, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/sign-out", nil, nil, false)
}

// Me fetches the authoritative user projection.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Profile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.Get(ctx, "/auth/profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ResendVerificationEmail(ctx context.Context, email string) error {
	return c.Post(ctx, "/auth/resend-verification-email", model.ResendVerificationRequest{Email: email}, nil)
}

// GoogleAuthURL asks the backend for the provider authorization URL.
func (c *Client) GoogleAuthURL(ctx context.Context) (string, error) {
	var out model.GoogleOAuthURL
	if err := c.do(ctx, http.MethodGet, "/auth/google/url", nil, &out, false); err != nil {
		return "", err
	}
	return out.AuthURL, nil
}

// GoogleCallback forwards the provider's code/state to the backend exchange.
func (c *Client) GoogleCallback(ctx context.Context, in model.GoogleOAuthCallback) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/auth/google/callback", in, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}
