package model

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type UserStatus string

const (
	UserStatusActive              UserStatus = "active"
	UserStatusInactive            UserStatus = "inactive"
	UserStatusVerificationPending UserStatus = "verification_pending"
	UserStatusSuspended           UserStatus = "suspended"
)

// User is the client's read-only projection of the backend account.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	Role        UserRole   `json:"role"`
	Status      UserStatus `json:"status"`
	GoogleID    string     `json:"google_id,omitempty"`
	AvatarURL   string     `json:"avatar_url,omitempty"`
	IsOAuthUser bool       `json:"is_oauth_user"`
}

// Complete reports whether the record carries an identity.
func (u *User) Complete() bool {
	return u != nil && u.ID != ""
}

type UserProfile struct {
	User
	TotalURLs   int64     `json:"total_urls"`
	TotalClicks int64     `json:"total_clicks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResendVerificationRequest struct {
	Email string `json:"email"`
}

type GoogleOAuthCallback struct {
	Code  string `json:"code"`
	State string `json:"state,omitempty"`
}

type GoogleOAuthURL struct {
	AuthURL string `json:"auth_url"`
}

type SessionResponse struct {
	IsSignedIn bool `json:"isSignedIn"`
}
