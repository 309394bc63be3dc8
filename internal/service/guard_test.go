package service

import (
	"testing"

	"github.com/shortenurl/web/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name  string
		state AuthState
		want  Verdict
	}{
		{"uninitialized", AuthState{}, VerdictLoading},
		{"initializing", AuthState{IsLoading: true}, VerdictLoading},
		{"loading after init", AuthState{IsInitialized: true, IsLoading: true}, VerdictLoading},
		{"unauthenticated", AuthState{IsInitialized: true}, VerdictRedirect},
		{"errored", AuthState{IsInitialized: true, Error: "Failed to check session"}, VerdictRedirect},
		{"authenticated", AuthState{IsInitialized: true, IsAuthenticated: true, User: &model.User{ID: "u1"}}, VerdictRender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.state))
		})
	}
}

func TestGuardRedirect(t *testing.T) {
	assert.Equal(t, InactiveRoute, GuardRedirect(InactiveRoute, "/dashboard"))
	assert.Equal(t, "/auth/sign-in?redirectUrl=%2Fprofile", GuardRedirect("", "/profile"))
}

func TestSignInRedirect(t *testing.T) {
	assert.Equal(t, SignInRoute, SignInRedirect(""))
	assert.Equal(t, SignInRoute, SignInRedirect(SignUpRoute))
	assert.Equal(t, "/auth/sign-in?redirectUrl=%2Fdashboard%3Fpage%3D2", SignInRedirect("/dashboard?page=2"))
}

func TestStatusRoute(t *testing.T) {
	assert.Equal(t, AppRoute, StatusRoute(model.UserStatusActive))
	assert.Equal(t, InactiveRoute, StatusRoute(model.UserStatusInactive))
	assert.Equal(t, AccountStatusRoute, StatusRoute(model.UserStatusVerificationPending))
	assert.Equal(t, AccountStatusRoute, StatusRoute(model.UserStatusSuspended))
}

func TestSafeRedirect(t *testing.T) {
	for _, target := range []string{"/dashboard", "/dashboard/urls?page=2"} {
		got, ok := SafeRedirect(target)
		assert.True(t, ok, target)
		assert.Equal(t, target, got)
	}
	for _, target := range []string{"", "dashboard", "//evil.example", "/\\evil.example", "https://evil.example/"} {
		_, ok := SafeRedirect(target)
		assert.False(t, ok, target)
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "loading", VerdictLoading.String())
	assert.Equal(t, "redirect", VerdictRedirect.String())
	assert.Equal(t, "render", VerdictRender.String())
}
