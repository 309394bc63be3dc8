package service

import (
	"net/url"
	"strings"
	"sync"

	"github.com/shortenurl/web/internal/model"
)

const (
	SignInRoute        = "/auth/sign-in"
	SignUpRoute        = "/auth/sign-up"
	AppRoute           = "/dashboard"
	InactiveRoute      = "/inactive"
	AccountStatusRoute = "/account/status"
	OAuthFailedRoute   = SignInRoute + "?error=oauth_failed"

	authRoutePrefix = "/auth/"
)

func IsAuthRoute(path string) bool {
	return strings.HasPrefix(path, authRoutePrefix)
}

// SignInRedirect builds the sign-in URL carrying the page the visitor was
// trying to reach.
func SignInRedirect(path string) string {
	if path == "" || IsAuthRoute(path) {
		return SignInRoute
	}
	return SignInRoute + "?redirectUrl=" + url.QueryEscape(path)
}

// StatusRoute picks where an authenticated user lands.
func StatusRoute(status model.UserStatus) string {
	switch status {
	case model.UserStatusActive:
		return AppRoute
	case model.UserStatusInactive:
		return InactiveRoute
	default:
		return AccountStatusRoute
	}
}

// SafeRedirect accepts only same-origin absolute paths.
func SafeRedirect(target string) (string, bool) {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "", false
	}
	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "", false
	}
	return target, true
}

type Navigator interface {
	Navigate(target string)
}

type NoticeLevel string

const (
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
)

// Notifier surfaces dismissible messages to the visitor.
type Notifier interface {
	Notify(level NoticeLevel, message string)
}

type NopNavigator struct{}

func (NopNavigator) Navigate(string) {}

type NopNotifier struct{}

func (NopNotifier) Notify(NoticeLevel, string) {}

// RedirectRecorder keeps the last navigation target so the HTTP layer can
// turn it into a redirect.
type RedirectRecorder struct {
	mu     sync.Mutex
	target string
}

func (r *RedirectRecorder) Navigate(target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = target
}

func (r *RedirectRecorder) Target() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

type NoticeBuffer struct {
	mu      sync.Mutex
	notices []model.Notice
}

func (b *NoticeBuffer) Notify(level NoticeLevel, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, model.Notice{Level: string(level), Message: message})
}

func (b *NoticeBuffer) Notices() []model.Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.notices) == 0 {
		return nil
	}
	out := make([]model.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}
