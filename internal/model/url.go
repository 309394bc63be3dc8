package model

import "time"

type URLStatus string

const (
	URLStatusActive   URLStatus = "active"
	URLStatusInactive URLStatus = "inactive"
)

type URL struct {
	ID          string     `json:"id"`
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      URLStatus  `json:"status"`
	ClickCount  int64      `json:"click_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ShortURL    string     `json:"short_url"`
}

type URLCreate struct {
	OriginalURL string     `json:"original_url"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	CustomCode  string     `json:"custom_code,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type URLUpdate struct {
	URLCreate
	Status URLStatus `json:"status,omitempty"`
}

type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

type PaginateQuery struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type URLListResponse struct {
	Data       []URL      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type DailyClicks struct {
	Date   time.Time `json:"date"`
	Clicks int64     `json:"clicks"`
}

type ReferrerClicks struct {
	Referrer string `json:"referrer"`
	Clicks   int64  `json:"clicks"`
}

type URLAnalytics struct {
	URLID           string           `json:"url_id"`
	TotalClicks     int64            `json:"total_clicks"`
	ClicksToday     int64            `json:"clicks_today"`
	ClicksThisWeek  int64            `json:"clicks_this_week"`
	ClicksThisMonth int64            `json:"clicks_this_month"`
	DailyClicks     []DailyClicks    `json:"daily_clicks"`
	Referrers       []ReferrerClicks `json:"referrers"`
	LastClicked     *time.Time       `json:"last_clicked,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type TopURL struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
	Clicks      int64  `json:"clicks"`
}

type DashboardStats struct {
	TotalURLs   int64    `json:"total_urls"`
	TotalClicks int64    `json:"total_clicks"`
	ActiveURLs  int64    `json:"active_urls"`
	TopURLs     []TopURL `json:"top_urls"`
}
