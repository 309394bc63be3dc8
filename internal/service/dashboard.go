package service

import (
	"context"
	"strings"

	"github.com/shortenurl/web/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	recentURLCount    = 5
	analyticsDays     = 30
	analyticsReferrer = 10
)

type DashboardView struct {
	Stats      *model.DashboardStats `json:"stats"`
	RecentURLs []model.URL           `json:"recentUrls"`
}

type AnalyticsView struct {
	URL       *model.URL             `json:"url"`
	Analytics *model.URLAnalytics    `json:"analytics"`
	Daily     []model.DailyClicks    `json:"daily"`
	Referrers []model.ReferrerClicks `json:"referrers"`
}

// Dashboard loads the overview page. Both calls share one request scope, so
// a 401 on either goes through the same refresh.
func (s *URLService) Dashboard(ctx context.Context) (*DashboardView, error) {
	view := &DashboardView{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.api.DashboardStats(gctx)
		if err != nil {
			return err
		}
		view.Stats = stats
		return nil
	})
	g.Go(func() error {
		page, err := s.api.ListURLs(gctx, model.PaginateQuery{Page: 1, Limit: recentURLCount})
		if err != nil {
			return err
		}
		view.RecentURLs = page.Data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *URLService) Analytics(ctx context.Context, id string) (*AnalyticsView, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}

	view := &AnalyticsView{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.api.GetURL(gctx, id)
		view.URL = u
		return err
	})
	g.Go(func() error {
		a, err := s.api.URLAnalytics(gctx, id)
		view.Analytics = a
		return err
	})
	g.Go(func() error {
		daily, err := s.api.DailyAnalytics(gctx, id, analyticsDays)
		view.Daily = daily
		return err
	})
	g.Go(func() error {
		refs, err := s.api.Referrers(gctx, id, analyticsReferrer)
		view.Referrers = refs
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}
