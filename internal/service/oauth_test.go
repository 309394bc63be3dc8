package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOAuthAPI struct {
	authURL string
	user    *model.User
	err     error
	calls   int
	got     model.GoogleOAuthCallback
}

func (f *fakeOAuthAPI) GoogleAuthURL(ctx context.Context) (string, error) {
	return f.authURL, f.err
}

func (f *fakeOAuthAPI) GoogleCallback(ctx context.Context, in model.GoogleOAuthCallback) (*model.User, error) {
	f.calls++
	f.got = in
	return f.user, f.err
}

type onceGuard struct {
	seen map[string]bool
	err  error
}

func (g *onceGuard) Claim(ctx context.Context, code string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.seen == nil {
		g.seen = map[string]bool{}
	}
	if g.seen[code] {
		return false, nil
	}
	g.seen[code] = true
	return true, nil
}

func TestOAuthAuthURL(t *testing.T) {
	api := &fakeOAuthAPI{authURL: "https://accounts.google.com/o/oauth2/auth?client_id=x"}
	svc := NewOAuthService(api, &onceGuard{}, nil)

	got, err := svc.AuthURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, api.authURL, got)

	api.authURL = "javascript:alert(1)"
	_, err = svc.AuthURL(context.Background())
	assert.ErrorIs(t, err, ErrOAuthFailed)
}

func TestOAuthComplete(t *testing.T) {
	t.Run("success routes by status", func(t *testing.T) {
		api := &fakeOAuthAPI{user: activeUser()}
		svc := NewOAuthService(api, &onceGuard{}, nil)

		res, err := svc.Complete(context.Background(), CallbackParams{Code: "c1", State: "s1"})
		require.NoError(t, err)
		assert.Equal(t, AppRoute, res.Redirect)
		assert.Equal(t, model.GoogleOAuthCallback{Code: "c1", State: "s1"}, api.got)
	})

	t.Run("inactive account", func(t *testing.T) {
		user := activeUser()
		user.Status = model.UserStatusInactive
		svc := NewOAuthService(&fakeOAuthAPI{user: user}, &onceGuard{}, nil)

		res, err := svc.Complete(context.Background(), CallbackParams{Code: "c1"})
		require.NoError(t, err)
		assert.Equal(t, InactiveRoute, res.Redirect)
	})

	t.Run("provider error", func(t *testing.T) {
		api := &fakeOAuthAPI{}
		svc := NewOAuthService(api, &onceGuard{}, nil)

		_, err := svc.Complete(context.Background(), CallbackParams{Error: "access_denied"})
		assert.ErrorIs(t, err, ErrOAuthCancelled)
		_, err = svc.Complete(context.Background(), CallbackParams{Error: "server_error"})
		assert.ErrorIs(t, err, ErrOAuthFailed)
		assert.Equal(t, 0, api.calls)
	})

	t.Run("missing code", func(t *testing.T) {
		svc := NewOAuthService(&fakeOAuthAPI{}, &onceGuard{}, nil)
		_, err := svc.Complete(context.Background(), CallbackParams{})
		assert.ErrorIs(t, err, ErrOAuthMissingCode)
	})

	t.Run("code is exchanged once", func(t *testing.T) {
		api := &fakeOAuthAPI{user: activeUser()}
		svc := NewOAuthService(api, &onceGuard{}, nil)

		_, err := svc.Complete(context.Background(), CallbackParams{Code: "c1"})
		require.NoError(t, err)
		_, err = svc.Complete(context.Background(), CallbackParams{Code: "c1"})
		assert.ErrorIs(t, err, ErrOAuthReplayed)
		assert.Equal(t, 1, api.calls)
	})

	t.Run("guard failure", func(t *testing.T) {
		api := &fakeOAuthAPI{user: activeUser()}
		svc := NewOAuthService(api, &onceGuard{err: errors.New("redis down")}, nil)

		_, err := svc.Complete(context.Background(), CallbackParams{Code: "c1"})
		assert.Error(t, err)
		assert.Equal(t, 0, api.calls)
	})

	t.Run("incomplete user", func(t *testing.T) {
		svc := NewOAuthService(&fakeOAuthAPI{user: &model.User{}}, &onceGuard{}, nil)
		_, err := svc.Complete(context.Background(), CallbackParams{Code: "c1"})
		assert.ErrorIs(t, err, ErrOAuthFailed)
	})
}

func TestOAuthErrorMessage(t *testing.T) {
	assert.Equal(t, "Google authentication was cancelled", OAuthErrorMessage(ErrOAuthCancelled))
	assert.Equal(t, "No authorization code received from Google", OAuthErrorMessage(ErrOAuthMissingCode))
	assert.Equal(t, "Email not verified", OAuthErrorMessage(&client.APIError{Kind: client.KindForbidden, Message: "Email not verified"}))
	assert.Equal(t, "Authentication failed", OAuthErrorMessage(&client.APIError{Kind: client.KindServer, Message: "Something went wrong"}))
	assert.Equal(t, "Authentication failed", OAuthErrorMessage(errors.New("x")))
}
