package model

type ErrorResponse struct {
	Error      string            `json:"error"`
	Code       string            `json:"code,omitempty"`
	Details    []ValidationIssue `json:"details,omitempty"`
	RetryAfter int64             `json:"retryAfter,omitempty"`
	Redirect   string            `json:"redirect,omitempty"`
}

// ValidationIssue is one field-level entry of a 422 "detail" list.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Field returns the last loc segment, which forms map onto inputs.
func (v ValidationIssue) Field() string {
	if len(v.Loc) == 0 {
		return ""
	}
	return v.Loc[len(v.Loc)-1]
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type SignInResponse struct {
	User     *User        `json:"user"`
	Error    *SignInError `json:"error,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
	Notices  []Notice     `json:"notices,omitempty"`
}

type SignInError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SignOutResponse struct {
	Status   string   `json:"status"`
	Redirect string   `json:"redirect"`
	Notices  []Notice `json:"notices,omitempty"`
}

type AuthStateResponse struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	IsLoading       bool     `json:"isLoading"`
	IsInitialized   bool     `json:"isInitialized"`
	User            *User    `json:"user"`
	Error           string   `json:"error,omitempty"`
	Redirect        string   `json:"redirect,omitempty"`
	Notices         []Notice `json:"notices,omitempty"`
}

type PageResponse struct {
	Page    string   `json:"page"`
	User    *User    `json:"user,omitempty"`
	Data    any      `json:"data,omitempty"`
	Notices []Notice `json:"notices,omitempty"`
}

type LoadingResponse struct {
	Status string `json:"status"`
}
