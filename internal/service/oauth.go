package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
)

var (
	ErrOAuthCancelled   = errors.New("google authentication was cancelled")
	ErrOAuthFailed      = errors.New("google authentication failed")
	ErrOAuthMissingCode = errors.New("no authorization code received from google")
	ErrOAuthReplayed    = errors.New("authorization code already used")
)

type OAuthAPI interface {
	GoogleAuthURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, in model.GoogleOAuthCallback) (*model.User, error)
}

// CallbackGuard lets exactly one caller claim a given authorization code.
type CallbackGuard interface {
	Claim(ctx context.Context, code string) (bool, error)
}

type CallbackParams struct {
	Code  string
	State string
	Error string
}

type CallbackResult struct {
	User     *model.User
	Redirect string
}

type OAuthService struct {
	api    OAuthAPI
	guard  CallbackGuard
	logger *slog.Logger
}

func NewOAuthService(api OAuthAPI, guard CallbackGuard, logger *slog.Logger) *OAuthService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OAuthService{api: api, guard: guard, logger: logger}
}

// AuthURL returns the backend-issued provider URL the browser is sent to.
func (s *OAuthService) AuthURL(ctx context.Context) (string, error) {
	raw, err := s.api.GoogleAuthURL(ctx)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		s.logger.WarnContext(ctx, "backend returned unusable oauth url", "url", raw)
		return "", ErrOAuthFailed
	}
	return raw, nil
}

// Complete forwards the callback triple to the backend exchange, at most
// once per authorization code.
func (s *OAuthService) Complete(ctx context.Context, p CallbackParams) (*CallbackResult, error) {
	if p.Error != "" {
		if p.Error == "access_denied" {
			return nil, ErrOAuthCancelled
		}
		return nil, ErrOAuthFailed
	}
	if p.Code == "" {
		return nil, ErrOAuthMissingCode
	}

	claimed, err := s.guard.Claim(ctx, p.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to claim oauth callback: %w", err)
	}
	if !claimed {
		s.logger.InfoContext(ctx, "ignoring replayed oauth callback")
		return nil, ErrOAuthReplayed
	}

	user, err := s.api.GoogleCallback(ctx, model.GoogleOAuthCallback{Code: p.Code, State: p.State})
	if err != nil {
		return nil, err
	}
	if !user.Complete() {
		return nil, ErrOAuthFailed
	}

	return &CallbackResult{User: user, Redirect: StatusRoute(user.Status)}, nil
}

// OAuthErrorMessage is the text shown to the visitor after a failed callback.
func OAuthErrorMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, ErrOAuthCancelled):
		return "Google authentication was cancelled"
	case errors.Is(err, ErrOAuthMissingCode):
		return "No authorization code received from Google"
	case errors.Is(err, ErrOAuthReplayed):
		return "This sign-in link has already been used"
	case errors.Is(err, ErrOAuthFailed):
		return "Google authentication failed"
	case errors.As(err, &apiErr) && apiErr.Kind != client.KindServer && apiErr.Message != "":
		return apiErr.Message
	default:
		return "Authentication failed"
	}
}
