package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

// PageHandler serves the page routes. Protected pages sit behind RouteGuard,
// so the state machine is already initialized when they run.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// AuthPage serves sign-in and sign-up. Signed-in visitors are sent to the
// page matching their account status.
func (h *PageHandler) AuthPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := GetScope(c)
		scope.Auth.Initialize(c.Request.Context())

		if target := scope.Redirect(); target != "" {
			c.Redirect(http.StatusFound, target)
			return
		}
		c.JSON(http.StatusOK, model.PageResponse{Page: name, Notices: scope.Notices()})
	}
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	scope := GetScope(c)
	view, err := scope.URLs.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "dashboard", view)
}

func (h *PageHandler) URLs(c *gin.Context) {
	query := c.Request.URL.Query()
	page, err := service.ParsePagination(query)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	filters, err := service.ParseFilters(query)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	listing, err := GetScope(c).URLs.List(c.Request.Context(), page, filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "urls", listing)
}

func (h *PageHandler) URLAnalytics(c *gin.Context) {
	view, err := GetScope(c).URLs.Analytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "url-analytics", view)
}

func (h *PageHandler) Profile(c *gin.Context) {
	profile, err := GetScope(c).Client.Profile(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "profile", profile)
}

// StatusPage is where accounts that are not active land after sign-in.
func (h *PageHandler) StatusPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, name, nil)
	}
}

func (h *PageHandler) render(c *gin.Context, page string, data any) {
	scope := GetScope(c)
	c.JSON(http.StatusOK, model.PageResponse{
		Page:    page,
		User:    scope.Auth.State().User,
		Data:    data,
		Notices: scope.Notices(),
	})
}

// fail turns a mid-page session loss into a sign-in redirect; anything else
// is reported as an API error.
func (h *PageHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, client.ErrSessionExpired) {
		c.Redirect(http.StatusFound, service.SignInRedirect(c.Request.URL.RequestURI()))
		return
	}
	writeAPIError(c, err)
}
