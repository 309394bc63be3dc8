package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shortenurl/web/internal/model"
)

// Kind classifies a failed call by HTTP status or transport condition.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindValidation   Kind = "validation"
	KindRateLimited  Kind = "rate_limited"
	KindClient       Kind = "client"
	KindServer       Kind = "server"
)

const (
	CodeNetworkError    = "network_error"
	CodeTimeout         = "timeout"
	CodeCanceled        = "canceled"
	CodeUnauthorized    = "unauthorized"
	CodeSessionExpired  = "session_expired"
	CodeForbidden       = "forbidden"
	CodeValidation      = "validation_error"
	CodeRateLimited     = "rate_limited"
	CodeNotFound        = "not_found"
	CodeClientError     = "client_error"
	CodeServerError     = "server_error"
	CodeInvalidResponse = "invalid_response"
)

const (
	msgNetwork      = "Unable to reach the server. Check your connection and try again."
	msgTimeout      = "The request timed out. Please try again."
	msgUnauthorized = "Your session has expired. Please sign in again."
	msgForbidden    = "You do not have permission to perform this action."
	msgValidation   = "Some fields are invalid."
	msgRateLimited  = "Too many requests. Please try again later."
	msgServer       = "Something went wrong. Please try again later."
)

// APIError is the single normalized shape every backend failure takes
// before it reaches handlers.
type APIError struct {
	Kind       Kind
	Status     int
	Code       string
	Message    string
	Detail     string
	Issues     []model.ValidationIssue
	RetryAfter time.Duration
	Err        error
}

var (
	ErrNetwork        = &APIError{Kind: KindNetwork}
	ErrTimeout        = &APIError{Kind: KindNetwork, Code: CodeTimeout}
	ErrUnauthorized   = &APIError{Kind: KindUnauthorized}
	ErrSessionExpired = &APIError{Kind: KindUnauthorized, Code: CodeSessionExpired}
	ErrForbidden      = &APIError{Kind: KindForbidden}
	ErrValidation     = &APIError{Kind: KindValidation}
	ErrRateLimited    = &APIError{Kind: KindRateLimited}
	ErrNotFound       = &APIError{Kind: KindClient, Code: CodeNotFound}
	ErrClient         = &APIError{Kind: KindClient}
	ErrServer         = &APIError{Kind: KindServer}
)

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels above. A sentinel with a Code only matches
// errors carrying that code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

// AsAPIError extracts the normalized error, wrapping anything foreign as a
// network failure.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return transportError(err)
}

func transportError(err error) *APIError {
	out := &APIError{Kind: KindNetwork, Code: CodeNetworkError, Message: msgNetwork, Err: err}

	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		out.Code = CodeCanceled
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		out.Code = CodeTimeout
		out.Message = msgTimeout
	}
	return out
}

func sessionExpired(cause error) *APIError {
	return &APIError{
		Kind:    KindUnauthorized,
		Status:  http.StatusUnauthorized,
		Code:    CodeSessionExpired,
		Message: msgUnauthorized,
		Err:     cause,
	}
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type rawIssue struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// parseDetail reads the backend's "detail" field, which is either a string
// or a list of field-level validation issues.
func parseDetail(body []byte) (string, []model.ValidationIssue) {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return strings.TrimSpace(string(body)), nil
	}

	if len(parsed.Detail) > 0 {
		var text string
		if err := json.Unmarshal(parsed.Detail, &text); err == nil {
			return text, nil
		}

		var raw []rawIssue
		if err := json.Unmarshal(parsed.Detail, &raw); err == nil {
			issues := make([]model.ValidationIssue, 0, len(raw))
			msgs := make([]string, 0, len(raw))
			for _, item := range raw {
				loc := make([]string, 0, len(item.Loc))
				for _, part := range item.Loc {
					loc = append(loc, fmt.Sprint(part))
				}
				issues = append(issues, model.ValidationIssue{Loc: loc, Msg: item.Msg, Type: item.Type})
				msgs = append(msgs, item.Msg)
			}
			return strings.Join(msgs, "; "), issues
		}
	}

	if parsed.Message != "" {
		return parsed.Message, nil
	}
	return parsed.Error, nil
}

// normalize maps a non-2xx backend response to an APIError.
func normalize(status int, header http.Header, body []byte) *APIError {
	detail, issues := parseDetail(body)
	out := &APIError{Status: status, Detail: detail, Issues: issues}

	switch {
	case status == http.StatusUnauthorized:
		out.Kind = KindUnauthorized
		out.Code = CodeUnauthorized
		out.Message = orDefault(detail, msgUnauthorized)
	case status == http.StatusForbidden:
		out.Kind = KindForbidden
		out.Code = CodeForbidden
		out.Message = orDefault(detail, msgForbidden)
	case status == http.StatusUnprocessableEntity:
		out.Kind = KindValidation
		out.Code = CodeValidation
		out.Message = orDefault(detail, msgValidation)
	case status == http.StatusTooManyRequests:
		out.Kind = KindRateLimited
		out.Code = CodeRateLimited
		out.Message = msgRateLimited
		out.RetryAfter = parseRetryAfter(header.Get("Retry-After"), time.Now())
	case status >= http.StatusInternalServerError:
		out.Kind = KindServer
		out.Code = CodeServerError
		out.Message = msgServer
	case status == http.StatusNotFound:
		out.Kind = KindClient
		out.Code = CodeNotFound
		out.Message = orDefault(detail, http.StatusText(status))
	default:
		out.Kind = KindClient
		out.Code = CodeClientError
		out.Message = orDefault(detail, http.StatusText(status))
	}
	return out
}

func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
