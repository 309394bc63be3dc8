// Package session is the only place that reads or clears the HTTP-only
// session cookie. Everything else asks it whether a session exists.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shortenurl/web/internal/config"
	"github.com/shortenurl/web/internal/model"
)

const defaultCookieName = "access_token"

var ErrMisconfigured = errors.New("session config invalid")

type CookieConfig struct {
	Name     string
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

type Checker struct {
	cookie CookieConfig
	secret []byte
	now    func() time.Time
}

func NewChecker(cfg config.SessionConfig) (*Checker, error) {
	secure, err := parseBool(cfg.CookieSecure, true)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid AUTH_COOKIE_SECURE", ErrMisconfigured)
	}

	sameSite, err := parseSameSite(cfg.CookieSameSite)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid AUTH_COOKIE_SAMESITE", ErrMisconfigured)
	}

	if sameSite == http.SameSiteNoneMode && !secure {
		return nil, fmt.Errorf("%w: SameSite=None requires Secure cookie", ErrMisconfigured)
	}

	name := strings.TrimSpace(cfg.CookieName)
	if name == "" {
		name = defaultCookieName
	}
	path := strings.TrimSpace(cfg.CookiePath)
	if path == "" {
		path = "/"
	}

	return &Checker{
		cookie: CookieConfig{
			Name:     name,
			Path:     path,
			Domain:   cfg.CookieDomain,
			Secure:   secure,
			SameSite: sameSite,
		},
		secret: []byte(cfg.JWTSecret),
		now:    time.Now,
	}, nil
}

func (c *Checker) CookieConfig() CookieConfig {
	return c.cookie
}

// Valid decides whether a raw cookie value stands for a live session.
// Opaque values count by presence; JWT values must not be expired and,
// when a secret is configured, must carry a valid HMAC signature.
func (c *Checker) Valid(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if strings.Count(value, ".") != 2 {
		return true
	}

	claims := &jwt.RegisteredClaims{}
	if len(c.secret) > 0 {
		token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		}, jwt.WithTimeFunc(c.now))
		return err == nil && token.Valid
	}

	if _, _, err := jwt.NewParser().ParseUnverified(value, claims); err != nil {
		return true
	}
	if claims.ExpiresAt != nil && !c.now().Before(claims.ExpiresAt.Time) {
		return false
	}
	return true
}

// Status is the GET side of the session probe endpoint.
func (c *Checker) Status(r *http.Request) model.SessionResponse {
	cookie, err := r.Cookie(c.cookie.Name)
	if err != nil {
		return model.SessionResponse{IsSignedIn: false}
	}
	return model.SessionResponse{IsSignedIn: c.Valid(cookie.Value)}
}

// Clear is the DELETE side of the session probe endpoint.
func (c *Checker) Clear(w http.ResponseWriter) model.SessionResponse {
	http.SetCookie(w, c.expired(c.cookie.Name))
	return model.SessionResponse{IsSignedIn: false}
}

func (c *Checker) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     c.cookie.Path,
		Domain:   c.cookie.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   c.cookie.Secure,
		HttpOnly: true,
		SameSite: c.cookie.SameSite,
	}
}

// FromRequest opens the per-request view of the browser's cookies.
func (c *Checker) FromRequest(r *http.Request) *Session {
	s := &Session{
		checker: c,
		cookies: make(map[string]*http.Cookie),
		changed: make(map[string]*http.Cookie),
	}
	for _, cookie := range r.Cookies() {
		if _, ok := s.cookies[cookie.Name]; ok {
			continue
		}
		s.cookies[cookie.Name] = cookie
		s.order = append(s.order, cookie.Name)
	}
	return s
}

// Session holds the cookies of one browser request: the ones it arrived
// with, plus whatever the backend set or the flow cleared since.
type Session struct {
	checker *Checker

	mu      sync.Mutex
	cookies map[string]*http.Cookie
	order   []string
	changed map[string]*http.Cookie
	cleared bool
}

// Cookies returns the cookies to forward to the backend.
func (s *Session) Cookies() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*http.Cookie, 0, len(s.order))
	for _, name := range s.order {
		if cookie, ok := s.cookies[name]; ok {
			out = append(out, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
	return out
}

// SetCookies applies Set-Cookie headers received from the backend.
func (s *Session) SetCookies(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.checker.now()
	for _, cookie := range cookies {
		if cookie == nil || cookie.Name == "" {
			continue
		}
		s.changed[cookie.Name] = cookie
		if cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now)) || cookie.Value == "" {
			s.remove(cookie.Name)
			continue
		}
		if _, ok := s.cookies[cookie.Name]; !ok {
			s.order = append(s.order, cookie.Name)
		}
		s.cookies[cookie.Name] = cookie
		if cookie.Name == s.checker.cookie.Name {
			s.cleared = false
		}
	}
}

func (s *Session) remove(name string) {
	delete(s.cookies, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Probe reports whether the current cookie set still carries a session.
func (s *Session) Probe(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, ok := s.cookies[s.checker.cookie.Name]
	if !ok {
		return false, nil
	}
	return s.checker.Valid(cookie.Value), nil
}

// Clear drops the session cookie locally and marks it for deletion in the
// browser.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := s.checker.cookie.Name
	_, present := s.cookies[name]
	_, pending := s.changed[name]
	s.remove(name)
	delete(s.changed, name)
	// nothing to tell the browser about a cookie it never had
	if present || pending {
		s.cleared = true
	}
	return nil
}

func (s *Session) Cleared() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

// Relay writes pending cookie changes into the response headers. It drains
// the pending set so calling it twice is harmless.
func (s *Session) Relay(header http.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.checker.cookie
	for name, cookie := range s.changed {
		out := &http.Cookie{
			Name:     name,
			Value:    cookie.Value,
			Path:     cfg.Path,
			Domain:   cfg.Domain,
			MaxAge:   cookie.MaxAge,
			Expires:  cookie.Expires,
			Secure:   cfg.Secure,
			HttpOnly: cookie.HttpOnly || name == cfg.Name,
			SameSite: cfg.SameSite,
		}
		if v := out.String(); v != "" {
			header.Add("Set-Cookie", v)
		}
	}
	if s.cleared {
		header.Add("Set-Cookie", s.checker.expired(cfg.Name).String())
	}
	s.changed = make(map[string]*http.Cookie)
	s.cleared = false
}

func parseBool(value string, fallback bool) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(value)
}

func parseSameSite(value string) (http.SameSite, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return http.SameSiteLaxMode, nil
	}
	switch value {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("unknown SameSite mode %q", value)
	}
}
