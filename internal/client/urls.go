package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shortenurl/web/internal/model"
)

func (c *Client) CreateURL(ctx context.Context, in model.URLCreate) (*model.URL, error) {
	var out model.URL
	if err := c.Post(ctx, "/urls/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListURLs(ctx context.Context, q model.PaginateQuery) (*model.URLListResponse, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/urls/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out model.URLListResponse
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetURL(ctx context.Context, id string) (*model.URL, error) {
	var out model.URL
	if err := c.Get(ctx, "/urls/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateURL(ctx context.Context, id string, in model.URLUpdate) (*model.URL, error) {
	var out model.URL
	if err := c.Put(ctx, "/urls/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteURL(ctx context.Context, id string) error {
	return c.Delete(ctx, "/urls/"+url.PathEscape(id), nil)
}

func (c *Client) URLAnalytics(ctx context.Context, id string) (*model.URLAnalytics, error) {
	var out model.URLAnalytics
	if err := c.Get(ctx, "/urls/"+url.PathEscape(id)+"/analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DailyAnalytics(ctx context.Context, id string, days int) ([]model.DailyClicks, error) {
	if days <= 0 {
		days = 30
	}
	var out []model.DailyClicks
	path := "/urls/" + url.PathEscape(id) + "/analytics/daily?days=" + strconv.Itoa(days)
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Referrers(ctx context.Context, id string, limit int) ([]model.ReferrerClicks, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []model.ReferrerClicks
	path := "/urls/" + url.PathEscape(id) + "/analytics/referrers?limit=" + strconv.Itoa(limit)
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	if err := c.Get(ctx, "/analytics/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
