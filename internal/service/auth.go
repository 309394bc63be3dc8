package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
)

const (
	msgSessionExpired   = "Session expired. Please sign in again."
	msgSessionCheck     = "Failed to check session"
	msgFetchUser        = "Failed to fetch user data"
	msgIncompleteUser   = "Incomplete user record"
	msgSignInFailed     = "Sign in failed"
	msgSignOutFailed    = "Failed to sign out from the server. You have been signed out on this device."
	CodeUnknownError    = "UNKNOWN_ERROR"
	CodeInvalidResponse = "INVALID_RESPONSE"
)

var ErrIncompleteUser = errors.New("incomplete user record")

type AuthAPI interface {
	SignIn(ctx context.Context, in model.LoginInput) (*model.User, error)
	SignUp(ctx context.Context, in model.RegisterInput) (*model.User, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*model.User, error)
}

// SessionProbe is the session oracle: it answers whether a session cookie
// exists and can drop it.
type SessionProbe interface {
	Probe(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
}

type AuthState struct {
	IsAuthenticated bool
	IsLoading       bool
	IsInitialized   bool
	User            *model.User
	Error           string
}

type Phase string

const (
	PhaseUninitialized   Phase = "uninitialized"
	PhaseInitializing    Phase = "initializing"
	PhaseAuthenticated   Phase = "authenticated"
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseError           Phase = "error"
)

func (s AuthState) Phase() Phase {
	switch {
	case s.IsAuthenticated:
		return PhaseAuthenticated
	case !s.IsInitialized && s.IsLoading:
		return PhaseInitializing
	case !s.IsInitialized:
		return PhaseUninitialized
	case s.Error != "":
		return PhaseError
	default:
		return PhaseUnauthenticated
	}
}

type ActionType string

const (
	ActionInitialize             ActionType = "INITIALIZE"
	ActionSetLoading             ActionType = "SET_LOADING"
	ActionSetError               ActionType = "SET_ERROR"
	ActionUpdateSession          ActionType = "UPDATE_SESSION"
	ActionSignOut                ActionType = "SIGN_OUT"
	ActionResetToUnauthenticated ActionType = "RESET_TO_UNAUTHENTICATED"
)

type Action struct {
	Type    ActionType
	Payload AuthState
	Loading bool
	Error   string
}

// reduce is the only place AuthState changes.
func reduce(state AuthState, action Action) AuthState {
	next := state
	switch action.Type {
	case ActionInitialize:
		next = action.Payload
		next.IsInitialized = true
		next.IsLoading = false
	case ActionSetLoading:
		next.IsLoading = action.Loading
	case ActionSetError:
		next.Error = action.Error
	case ActionUpdateSession:
		next.IsAuthenticated = action.Payload.IsAuthenticated
		next.User = action.Payload.User
		next.IsLoading = action.Payload.IsLoading
		next.Error = action.Payload.Error
	case ActionSignOut:
		next = AuthState{IsInitialized: true}
	case ActionResetToUnauthenticated:
		next = AuthState{IsInitialized: true, Error: action.Error}
	default:
		return state
	}

	// user is present iff authenticated; initialized never reverts
	if next.User == nil || !next.IsAuthenticated {
		next.User = nil
		next.IsAuthenticated = false
	}
	next.IsInitialized = next.IsInitialized || state.IsInitialized
	return next
}

type SignInResult struct {
	User  *model.User
	Error *model.SignInError
}

// AuthService is the per page-load auth state machine.
type AuthService struct {
	api      AuthAPI
	session  SessionProbe
	nav      Navigator
	notifier Notifier
	logger   *slog.Logger
	path     string

	mu       sync.RWMutex
	state    AuthState
	initOnce sync.Once
}

type AuthOption func(*AuthService)

func WithNavigator(nav Navigator) AuthOption {
	return func(s *AuthService) {
		s.nav = nav
	}
}

func WithNotifier(n Notifier) AuthOption {
	return func(s *AuthService) {
		s.notifier = n
	}
}

func WithLogger(logger *slog.Logger) AuthOption {
	return func(s *AuthService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// AtPath sets the route the visitor is on; it drives the auth-route checks
// and the sign-in redirectUrl.
func AtPath(path string) AuthOption {
	return func(s *AuthService) {
		s.path = path
	}
}

func NewAuthService(api AuthAPI, session SessionProbe, opts ...AuthOption) *AuthService {
	s := &AuthService{
		api:      api,
		session:  session,
		nav:      NopNavigator{},
		notifier: NopNotifier{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		path:     "/",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	if out.User != nil {
		user := *out.User
		out.User = &user
	}
	return out
}

func (s *AuthService) Path() string {
	return s.path
}

func (s *AuthService) dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, action)
}

// commit dispatches unless ctx is done: the request that started the flow
// is gone and its state must not be touched.
func (s *AuthService) commit(ctx context.Context, action Action) bool {
	if ctx.Err() != nil {
		s.logger.DebugContext(ctx, "dropping auth state update after cancellation", "action", action.Type)
		return false
	}
	s.dispatch(action)
	return true
}

// Initialize bootstraps the session once per machine. Concurrent callers
// block until the first run finishes.
func (s *AuthService) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		if s.State().IsInitialized {
			return
		}
		s.initialize(ctx)
	})
}

func (s *AuthService) initialize(ctx context.Context) {
	s.dispatch(Action{Type: ActionSetLoading, Loading: true})

	signedIn, err := s.session.Probe(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "session probe failed", "error", err, "path", s.path)
		s.resetToUnauthenticated(ctx, msgSessionCheck)
		return
	}
	if !signedIn {
		s.resetToUnauthenticated(ctx, "")
		return
	}

	// the probe only says a cookie exists; the user always comes from /auth/me
	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch current user", "error", err, "path", s.path)
		s.resetToUnauthenticated(ctx, msgFetchUser)
		return
	}
	if !user.Complete() {
		s.logger.WarnContext(ctx, "current user record is incomplete", "path", s.path)
		s.resetToUnauthenticated(ctx, msgIncompleteUser)
		return
	}

	if !s.commit(ctx, Action{
		Type:    ActionInitialize,
		Payload: AuthState{IsAuthenticated: true, User: user},
	}) {
		return
	}

	if IsAuthRoute(s.path) {
		s.nav.Navigate(StatusRoute(user.Status))
	}
}

func (s *AuthService) resetToUnauthenticated(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		s.logger.DebugContext(ctx, "skipping unauthenticated reset after cancellation", "path", s.path)
		return
	}
	if err := s.session.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear session", "error", err)
	}
	s.dispatch(Action{Type: ActionResetToUnauthenticated, Error: reason})

	if !IsAuthRoute(s.path) {
		s.notifier.Notify(NoticeError, msgSessionExpired)
		s.nav.Navigate(SignInRedirect(s.path))
	}
}

// SignIn never returns an error; failures are reported in the result.
func (s *AuthService) SignIn(ctx context.Context, in model.LoginInput) SignInResult {
	s.dispatch(Action{Type: ActionSetLoading, Loading: true})

	user, err := s.api.SignIn(ctx, in)
	if err == nil && !user.Complete() {
		err = ErrIncompleteUser
	}
	if err != nil {
		code, message := signInFailure(err)
		s.logger.InfoContext(ctx, "sign in failed", "code", code)
		s.dispatch(Action{Type: ActionSetLoading, Loading: false})
		s.dispatch(Action{Type: ActionSetError, Error: message})
		return SignInResult{Error: &model.SignInError{Code: code, Message: message}}
	}

	s.commit(ctx, Action{
		Type:    ActionUpdateSession,
		Payload: AuthState{IsAuthenticated: true, User: user},
	})
	return SignInResult{User: user}
}

// SignUp creates the account without signing in. Errors are reported and
// returned so the form can map field issues.
func (s *AuthService) SignUp(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	s.dispatch(Action{Type: ActionSetLoading, Loading: true})
	defer s.dispatch(Action{Type: ActionSetLoading, Loading: false})

	user, err := s.api.SignUp(ctx, in)
	if err != nil {
		message := errorMessage(err)
		s.notifier.Notify(NoticeError, message)
		s.dispatch(Action{Type: ActionSetError, Error: message})
		return nil, err
	}
	return user, nil
}

// SignOut always ends unauthenticated, whatever the backend says.
func (s *AuthService) SignOut(ctx context.Context) {
	s.dispatch(Action{Type: ActionSetLoading, Loading: true})

	if err := s.api.SignOut(ctx); err != nil {
		s.logger.WarnContext(ctx, "backend sign out failed", "error", err)
		s.notifier.Notify(NoticeWarning, msgSignOutFailed)
	}
	if err := s.session.Clear(context.WithoutCancel(ctx)); err != nil {
		s.logger.WarnContext(ctx, "failed to clear session", "error", err)
	}

	s.dispatch(Action{Type: ActionSignOut})
	s.nav.Navigate(SignInRoute)
}

func signInFailure(err error) (string, string) {
	if errors.Is(err, ErrIncompleteUser) {
		return CodeInvalidResponse, msgSignInFailed
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, orDefault(apiErr.Message, msgSignInFailed)
	}
	return CodeUnknownError, orDefault(err.Error(), msgSignInFailed)
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
