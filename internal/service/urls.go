package service

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shortenurl/web/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidFilter = errors.New("invalid filter")
)

type SortField string

const (
	SortByCreatedAt  SortField = "created_at"
	SortByClickCount SortField = "click_count"
	SortByTitle      SortField = "title"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type DateRange string

const (
	DateRangeAll DateRange = "all"
	DateRange7d  DateRange = "7d"
	DateRange30d DateRange = "30d"
	DateRange90d DateRange = "90d"
)

const statusAll = "all"

var dateRangeDays = map[DateRange]int{
	DateRange7d:  7,
	DateRange30d: 30,
	DateRange90d: 90,
}

type FilterOptions struct {
	Search    string    `json:"search"`
	Status    string    `json:"status"`
	SortBy    SortField `json:"sortBy"`
	SortOrder SortOrder `json:"sortOrder"`
	DateRange DateRange `json:"dateRange"`
}

func DefaultFilters() FilterOptions {
	return FilterOptions{
		Status:    statusAll,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
		DateRange: DateRangeAll,
	}
}

// ParseFilters reads search/status/sortBy/sortOrder/dateRange from a query
// string. Missing keys keep their defaults.
func ParseFilters(values url.Values) (FilterOptions, error) {
	f := DefaultFilters()
	f.Search = strings.TrimSpace(values.Get("search"))

	if v := values.Get("status"); v != "" {
		switch v {
		case statusAll, string(model.URLStatusActive), string(model.URLStatusInactive):
			f.Status = v
		default:
			return f, ErrInvalidFilter
		}
	}
	if v := values.Get("sortBy"); v != "" {
		switch SortField(v) {
		case SortByCreatedAt, SortByClickCount, SortByTitle:
			f.SortBy = SortField(v)
		default:
			return f, ErrInvalidFilter
		}
	}
	if v := values.Get("sortOrder"); v != "" {
		switch SortOrder(v) {
		case SortAsc, SortDesc:
			f.SortOrder = SortOrder(v)
		default:
			return f, ErrInvalidFilter
		}
	}
	if v := values.Get("dateRange"); v != "" {
		if _, ok := dateRangeDays[DateRange(v)]; !ok && DateRange(v) != DateRangeAll {
			return f, ErrInvalidFilter
		}
		f.DateRange = DateRange(v)
	}
	return f, nil
}

func (f FilterOptions) HasActive() bool {
	return f.ActiveCount() > 0
}

// ActiveCount counts filter groups that differ from the defaults; sort
// field and order count as one.
func (f FilterOptions) ActiveCount() int {
	count := 0
	if f.Search != "" {
		count++
	}
	if f.Status != statusAll {
		count++
	}
	if f.DateRange != DateRangeAll {
		count++
	}
	if f.SortBy != SortByCreatedAt || f.SortOrder != SortDesc {
		count++
	}
	return count
}

// ApplyFilters filters and sorts one fetched page. The input is not modified.
func ApplyFilters(urls []model.URL, f FilterOptions, now time.Time) []model.URL {
	search := strings.ToLower(f.Search)
	var cutoff time.Time
	if days, ok := dateRangeDays[f.DateRange]; ok {
		cutoff = now.Add(-time.Duration(days) * 24 * time.Hour)
	}

	out := make([]model.URL, 0, len(urls))
	for _, u := range urls {
		if search != "" && !matchesSearch(u, search) {
			continue
		}
		if f.Status != "" && f.Status != statusAll && string(u.Status) != f.Status {
			continue
		}
		if !cutoff.IsZero() && u.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, u)
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareURLs(out[i], out[j], f.SortBy)
		if f.SortOrder == SortAsc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

func matchesSearch(u model.URL, search string) bool {
	for _, field := range []string{u.OriginalURL, u.ShortCode, u.Title, u.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func compareURLs(a, b model.URL, by SortField) int {
	switch by {
	case SortByClickCount:
		switch {
		case a.ClickCount < b.ClickCount:
			return -1
		case a.ClickCount > b.ClickCount:
			return 1
		}
		return 0
	case SortByTitle:
		return strings.Compare(strings.ToLower(displayTitle(a)), strings.ToLower(displayTitle(b)))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func displayTitle(u model.URL) string {
	if u.Title != "" {
		return u.Title
	}
	return u.ShortCode
}

func ParsePagination(values url.Values) (model.PaginateQuery, error) {
	q := model.PaginateQuery{Page: defaultPage, Limit: defaultLimit}
	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return q, ErrInvalidInput
		}
		q.Page = page
	}
	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return q, ErrInvalidInput
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		q.Limit = limit
	}
	return q, nil
}

type URLAPI interface {
	CreateURL(ctx context.Context, in model.URLCreate) (*model.URL, error)
	ListURLs(ctx context.Context, q model.PaginateQuery) (*model.URLListResponse, error)
	GetURL(ctx context.Context, id string) (*model.URL, error)
	UpdateURL(ctx context.Context, id string, in model.URLUpdate) (*model.URL, error)
	DeleteURL(ctx context.Context, id string) error
	URLAnalytics(ctx context.Context, id string) (*model.URLAnalytics, error)
	DailyAnalytics(ctx context.Context, id string, days int) ([]model.DailyClicks, error)
	Referrers(ctx context.Context, id string, limit int) ([]model.ReferrerClicks, error)
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type URLListing struct {
	URLs          []model.URL      `json:"urls"`
	Pagination    model.Pagination `json:"pagination"`
	Filters       FilterOptions    `json:"filters"`
	TotalCount    int              `json:"totalCount"`
	FilteredCount int              `json:"filteredCount"`
	ActiveURLs    int              `json:"activeUrls"`
	ActiveFilters int              `json:"activeFilters"`
}

type URLService struct {
	api URLAPI
	now func() time.Time
}

func NewURLService(api URLAPI) *URLService {
	return &URLService{api: api, now: time.Now}
}

// List fetches one page from the backend and filters it locally.
func (s *URLService) List(ctx context.Context, q model.PaginateQuery, f FilterOptions) (*URLListing, error) {
	page, err := s.api.ListURLs(ctx, q)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, u := range page.Data {
		if u.Status == model.URLStatusActive {
			active++
		}
	}

	filtered := ApplyFilters(page.Data, f, s.now())
	return &URLListing{
		URLs:          filtered,
		Pagination:    page.Pagination,
		Filters:       f,
		TotalCount:    len(page.Data),
		FilteredCount: len(filtered),
		ActiveURLs:    active,
		ActiveFilters: f.ActiveCount(),
	}, nil
}

func (s *URLService) Create(ctx context.Context, in model.URLCreate) (*model.URL, error) {
	if err := validateTarget(in.OriginalURL); err != nil {
		return nil, err
	}
	return s.api.CreateURL(ctx, in)
}

func (s *URLService) Get(ctx context.Context, id string) (*model.URL, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.api.GetURL(ctx, id)
}

func (s *URLService) Update(ctx context.Context, id string, in model.URLUpdate) (*model.URL, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	if in.OriginalURL != "" {
		if err := validateTarget(in.OriginalURL); err != nil {
			return nil, err
		}
	}
	switch in.Status {
	case "", model.URLStatusActive, model.URLStatusInactive:
	default:
		return nil, ErrInvalidInput
	}
	return s.api.UpdateURL(ctx, id, in)
}

func (s *URLService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.api.DeleteURL(ctx, id)
}

func validateTarget(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrInvalidInput
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidInput
	}
	return nil
}
