package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeAuthAPI struct {
	user       *model.User
	err        error
	signOutErr error
	meCalls    atomic.Int32
	onMe       func()
}

func (f *fakeAuthAPI) SignIn(ctx context.Context, in model.LoginInput) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeAuthAPI) SignUp(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	return f.user, f.err
}

func (f *fakeAuthAPI) SignOut(ctx context.Context) error {
	return f.signOutErr
}

func (f *fakeAuthAPI) Me(ctx context.Context) (*model.User, error) {
	f.meCalls.Add(1)
	if f.onMe != nil {
		f.onMe()
	}
	return f.user, f.err
}

type fakeSessionProbe struct {
	signedIn bool
	err      error
	probes   atomic.Int32
	clears   atomic.Int32
}

func (f *fakeSessionProbe) Probe(ctx context.Context) (bool, error) {
	f.probes.Add(1)
	return f.signedIn, f.err
}

func (f *fakeSessionProbe) Clear(ctx context.Context) error {
	f.clears.Add(1)
	return nil
}

func activeUser() *model.User {
	return &model.User{ID: "u1", Email: "ada@example.com", Username: "ada", Role: model.UserRoleUser, Status: model.UserStatusActive}
}

type AuthServiceSuite struct {
	suite.Suite
	api     *fakeAuthAPI
	session *fakeSessionProbe
	nav     *RedirectRecorder
	notices *NoticeBuffer
	ctx     context.Context
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.api = &fakeAuthAPI{}
	s.session = &fakeSessionProbe{}
	s.nav = &RedirectRecorder{}
	s.notices = &NoticeBuffer{}
	s.ctx = context.Background()
}

func (s *AuthServiceSuite) newService(path string) *AuthService {
	return NewAuthService(s.api, s.session,
		WithNavigator(s.nav),
		WithNotifier(s.notices),
		AtPath(path),
	)
}

func (s *AuthServiceSuite) TestInitialize() {
	s.Run("no session on a protected page redirects with notice", func() {
		s.SetupTest()
		svc := s.newService("/dashboard/urls")
		svc.Initialize(s.ctx)

		state := svc.State()
		s.True(state.IsInitialized)
		s.False(state.IsAuthenticated)
		s.False(state.IsLoading)
		s.Nil(state.User)
		s.Empty(state.Error)
		s.Equal(PhaseUnauthenticated, state.Phase())

		s.Equal(int32(0), s.api.meCalls.Load(), "no session means no /auth/me call")
		s.Equal(int32(1), s.session.clears.Load())
		s.Equal("/auth/sign-in?redirectUrl=%2Fdashboard%2Furls", s.nav.Target())
		s.Require().Len(s.notices.Notices(), 1)
		s.Equal(msgSessionExpired, s.notices.Notices()[0].Message)
	})

	s.Run("no session on an auth page stays put", func() {
		s.SetupTest()
		svc := s.newService(SignInRoute)
		svc.Initialize(s.ctx)

		s.True(svc.State().IsInitialized)
		s.Empty(s.nav.Target())
		s.Empty(s.notices.Notices())
	})

	s.Run("valid session authenticates", func() {
		s.SetupTest()
		s.session.signedIn = true
		s.api.user = activeUser()
		svc := s.newService("/dashboard")
		svc.Initialize(s.ctx)

		state := svc.State()
		s.True(state.IsAuthenticated)
		s.True(state.IsInitialized)
		s.False(state.IsLoading)
		s.Equal("u1", state.User.ID)
		s.Equal(PhaseAuthenticated, state.Phase())
		s.Empty(s.nav.Target())
	})

	s.Run("valid session on an auth page routes by status", func() {
		s.SetupTest()
		s.session.signedIn = true
		s.api.user = activeUser()
		s.api.user.Status = model.UserStatusInactive
		svc := s.newService(SignInRoute)
		svc.Initialize(s.ctx)

		s.Equal(InactiveRoute, s.nav.Target())
	})

	s.Run("user fetch failure resets", func() {
		s.SetupTest()
		s.session.signedIn = true
		s.api.err = client.ErrServer
		svc := s.newService("/dashboard")
		svc.Initialize(s.ctx)

		state := svc.State()
		s.False(state.IsAuthenticated)
		s.True(state.IsInitialized)
		s.Equal(msgFetchUser, state.Error)
		s.Equal(PhaseError, state.Phase())
		s.Equal(int32(1), s.session.clears.Load())
	})

	s.Run("incomplete user resets", func() {
		s.SetupTest()
		s.session.signedIn = true
		s.api.user = &model.User{Email: "no-id@example.com"}
		svc := s.newService("/dashboard")
		svc.Initialize(s.ctx)

		s.False(svc.State().IsAuthenticated)
		s.Equal(msgIncompleteUser, svc.State().Error)
	})

	s.Run("probe failure resets", func() {
		s.SetupTest()
		s.session.err = errors.New("probe down")
		svc := s.newService("/dashboard")
		svc.Initialize(s.ctx)

		s.Equal(msgSessionCheck, svc.State().Error)
		s.True(svc.State().IsInitialized)
	})

	s.Run("runs once", func() {
		s.SetupTest()
		s.session.signedIn = true
		s.api.user = activeUser()
		svc := s.newService("/dashboard")

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				svc.Initialize(s.ctx)
			}()
		}
		wg.Wait()
		svc.Initialize(s.ctx)

		s.Equal(int32(1), s.session.probes.Load())
		s.Equal(int32(1), s.api.meCalls.Load())
	})

	s.Run("cancellation leaves state untouched", func() {
		s.SetupTest()
		ctx, cancel := context.WithCancel(s.ctx)
		s.session.signedIn = true
		s.api.user = activeUser()
		s.api.onMe = cancel
		svc := s.newService("/dashboard")
		svc.Initialize(ctx)

		state := svc.State()
		s.False(state.IsInitialized)
		s.False(state.IsAuthenticated)
		s.Equal(VerdictLoading, Guard(state))
		s.Empty(s.nav.Target())
	})
}

func (s *AuthServiceSuite) TestSignIn() {
	s.Run("success", func() {
		s.SetupTest()
		s.api.user = activeUser()
		svc := s.newService(SignInRoute)

		res := svc.SignIn(s.ctx, model.LoginInput{Email: "ada@example.com", Password: "pw"})
		s.Nil(res.Error)
		s.Equal("u1", res.User.ID)

		state := svc.State()
		s.True(state.IsAuthenticated)
		s.False(state.IsLoading)
	})

	s.Run("backend rejection is returned, not thrown", func() {
		s.SetupTest()
		s.api.err = &client.APIError{
			Kind:    client.KindUnauthorized,
			Status:  http.StatusUnauthorized,
			Code:    client.CodeUnauthorized,
			Message: "Invalid email or password",
		}
		svc := s.newService(SignInRoute)

		res := svc.SignIn(s.ctx, model.LoginInput{Email: "ada@example.com", Password: "bad"})
		s.Nil(res.User)
		s.Require().NotNil(res.Error)
		s.Equal(client.CodeUnauthorized, res.Error.Code)
		s.Equal("Invalid email or password", res.Error.Message)

		state := svc.State()
		s.False(state.IsAuthenticated)
		s.False(state.IsLoading)
		s.Equal("Invalid email or password", state.Error)
	})

	s.Run("incomplete user", func() {
		s.SetupTest()
		s.api.user = &model.User{}
		svc := s.newService(SignInRoute)

		res := svc.SignIn(s.ctx, model.LoginInput{})
		s.Require().NotNil(res.Error)
		s.Equal(CodeInvalidResponse, res.Error.Code)
		s.False(svc.State().IsAuthenticated)
	})

	s.Run("foreign error", func() {
		s.SetupTest()
		s.api.err = errors.New("weird")
		svc := s.newService(SignInRoute)

		res := svc.SignIn(s.ctx, model.LoginInput{})
		s.Require().NotNil(res.Error)
		s.Equal(CodeUnknownError, res.Error.Code)
	})
}

func (s *AuthServiceSuite) TestSignUp() {
	s.Run("error is reported and returned", func() {
		s.SetupTest()
		s.api.err = &client.APIError{Kind: client.KindValidation, Code: client.CodeValidation, Message: "Email already registered"}
		svc := s.newService(SignUpRoute)

		user, err := svc.SignUp(s.ctx, model.RegisterInput{Email: "ada@example.com"})
		s.Nil(user)
		s.ErrorIs(err, client.ErrValidation)
		s.False(svc.State().IsLoading)
		s.Equal("Email already registered", svc.State().Error)
		s.Require().Len(s.notices.Notices(), 1)
		s.Equal(string(NoticeError), s.notices.Notices()[0].Level)
	})

	s.Run("success does not sign in", func() {
		s.SetupTest()
		s.api.user = activeUser()
		svc := s.newService(SignUpRoute)

		user, err := svc.SignUp(s.ctx, model.RegisterInput{Email: "ada@example.com"})
		s.NoError(err)
		s.Equal("u1", user.ID)
		s.False(svc.State().IsAuthenticated)
	})
}

func (s *AuthServiceSuite) TestSignOutFailsOpen() {
	s.session.signedIn = true
	s.api.user = activeUser()
	s.api.signOutErr = client.ErrServer
	svc := s.newService("/dashboard")
	svc.Initialize(s.ctx)
	s.Require().True(svc.State().IsAuthenticated)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	svc.SignOut(ctx)

	state := svc.State()
	s.False(state.IsAuthenticated)
	s.Nil(state.User)
	s.True(state.IsInitialized)
	s.Equal(SignInRoute, s.nav.Target())
	s.Equal(int32(1), s.session.clears.Load())
	s.Require().Len(s.notices.Notices(), 1)
	s.Equal(string(NoticeWarning), s.notices.Notices()[0].Level)
}

func (s *AuthServiceSuite) TestSignOutIsIdempotent() {
	svc := s.newService("/dashboard")

	for i := 0; i < 2; i++ {
		s.NotPanics(func() { svc.SignOut(s.ctx) })

		state := svc.State()
		s.False(state.IsAuthenticated)
		s.True(state.IsInitialized)
		s.False(state.IsLoading)
		s.Nil(state.User)
		s.Equal(PhaseUnauthenticated, state.Phase())
		s.Equal(SignInRoute, s.nav.Target())
	}
	s.Empty(s.notices.Notices())
}

func TestReduceInvariants(t *testing.T) {
	state := reduce(AuthState{}, Action{Type: ActionUpdateSession, Payload: AuthState{IsAuthenticated: true}})
	assert.False(t, state.IsAuthenticated, "authenticated requires a user")

	state = reduce(AuthState{}, Action{Type: ActionUpdateSession, Payload: AuthState{User: activeUser()}})
	assert.Nil(t, state.User, "a user requires authentication")

	initialized := reduce(AuthState{}, Action{Type: ActionInitialize})
	require.True(t, initialized.IsInitialized)
	for _, action := range []Action{
		{Type: ActionSetLoading, Loading: true},
		{Type: ActionSetError, Error: "x"},
		{Type: ActionUpdateSession},
		{Type: ActionSignOut},
		{Type: ActionResetToUnauthenticated},
		{Type: ActionInitialize, Payload: AuthState{IsInitialized: false}},
	} {
		assert.True(t, reduce(initialized, action).IsInitialized, "initialized never reverts on %s", action.Type)
	}

	unknown := reduce(initialized, Action{Type: "BOGUS"})
	assert.Equal(t, initialized, unknown)
}

func TestStateReturnsCopy(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{user: activeUser()}, &fakeSessionProbe{signedIn: true})
	svc.Initialize(context.Background())

	state := svc.State()
	state.User.Email = "mutated@example.com"
	assert.Equal(t, "ada@example.com", svc.State().User.Email)
}
