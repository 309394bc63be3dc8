package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  http.Header
		body    string
		kind    Kind
		code    string
		message string
	}{
		{
			name:    "unauthorized uses backend detail",
			status:  http.StatusUnauthorized,
			body:    `{"detail":"Invalid email or password"}`,
			kind:    KindUnauthorized,
			code:    CodeUnauthorized,
			message: "Invalid email or password",
		},
		{
			name:    "unauthorized without body",
			status:  http.StatusUnauthorized,
			kind:    KindUnauthorized,
			code:    CodeUnauthorized,
			message: msgUnauthorized,
		},
		{
			name:    "forbidden",
			status:  http.StatusForbidden,
			body:    `{"detail":"Email not verified"}`,
			kind:    KindForbidden,
			code:    CodeForbidden,
			message: "Email not verified",
		},
		{
			name:    "server error hides detail",
			status:  http.StatusInternalServerError,
			body:    `{"detail":"pq: relation \"urls\" does not exist"}`,
			kind:    KindServer,
			code:    CodeServerError,
			message: msgServer,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"detail":"URL not found"}`,
			kind:    KindClient,
			code:    CodeNotFound,
			message: "URL not found",
		},
		{
			name:    "other 4xx falls back to status text",
			status:  http.StatusConflict,
			body:    `not json`,
			kind:    KindClient,
			code:    CodeClientError,
			message: "not json",
		},
		{
			name:    "message field",
			status:  http.StatusBadRequest,
			body:    `{"message":"bad input"}`,
			kind:    KindClient,
			code:    CodeClientError,
			message: "bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := tt.header
			if header == nil {
				header = http.Header{}
			}
			err := normalize(tt.status, header, []byte(tt.body))
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestNormalizeKeepsServerDetailForLogs(t *testing.T) {
	err := normalize(http.StatusBadGateway, http.Header{}, []byte(`{"detail":"upstream down"}`))
	assert.Equal(t, msgServer, err.Message)
	assert.Equal(t, "upstream down", err.Detail)
}

func TestNormalizeValidationIssues(t *testing.T) {
	body := `{"detail":[
		{"loc":["body","email"],"msg":"value is not a valid email address","type":"value_error"},
		{"loc":["body","password",0],"msg":"too short","type":"value_error"}
	]}`
	err := normalize(http.StatusUnprocessableEntity, http.Header{}, []byte(body))

	require.Equal(t, KindValidation, err.Kind)
	require.Len(t, err.Issues, 2)
	assert.Equal(t, "email", err.Issues[0].Field())
	assert.Equal(t, []string{"body", "password", "0"}, err.Issues[1].Loc)
	assert.Equal(t, "value is not a valid email address; too short", err.Message)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeRateLimit(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "42")
	err := normalize(http.StatusTooManyRequests, header, nil)

	assert.Equal(t, KindRateLimited, err.Kind)
	assert.Equal(t, 42*time.Second, err.RetryAfter)
	assert.Equal(t, msgRateLimited, err.Message)
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Duration(0), parseRetryAfter("", now))
	assert.Equal(t, 5*time.Second, parseRetryAfter("5", now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("-3", now))
	assert.Equal(t, 90*time.Second, parseRetryAfter(now.Add(90*time.Second).Format(http.TimeFormat), now))
	assert.Equal(t, time.Duration(0), parseRetryAfter(now.Add(-time.Minute).Format(http.TimeFormat), now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon", now))
}

func TestTransportError(t *testing.T) {
	assert.Equal(t, CodeNetworkError, transportError(errors.New("connection refused")).Code)
	assert.Equal(t, CodeCanceled, transportError(context.Canceled).Code)

	timeout := transportError(context.DeadlineExceeded)
	assert.Equal(t, CodeTimeout, timeout.Code)
	assert.Equal(t, msgTimeout, timeout.Message)
	assert.ErrorIs(t, timeout, ErrTimeout)
	assert.ErrorIs(t, timeout, ErrNetwork)
}

func TestAPIErrorIs(t *testing.T) {
	expired := sessionExpired(nil)
	assert.ErrorIs(t, expired, ErrUnauthorized)
	assert.ErrorIs(t, expired, ErrSessionExpired)

	plain := normalize(http.StatusUnauthorized, http.Header{}, nil)
	assert.ErrorIs(t, plain, ErrUnauthorized)
	assert.NotErrorIs(t, plain, ErrSessionExpired)
	assert.NotErrorIs(t, plain, ErrForbidden)
}

func TestAsAPIErrorWrapsForeignErrors(t *testing.T) {
	assert.Nil(t, AsAPIError(nil))

	got := AsAPIError(errors.New("dial tcp: refused"))
	assert.Equal(t, KindNetwork, got.Kind)

	wrapped := AsAPIError(errors.Join(errors.New("ctx"), sessionExpired(nil)))
	assert.Equal(t, CodeSessionExpired, wrapped.Code)
}
