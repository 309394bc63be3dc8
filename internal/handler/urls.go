package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

type URLHandler struct{}

func NewURLHandler() *URLHandler {
	return &URLHandler{}
}

// List godoc
// @Summary List short URLs
// @Description Returns one backend page with search, status, date-range and sort applied locally.
// @Tags urls
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Matches URL, short code, title, description"
// @Param status query string false "all | active | inactive"
// @Param sortBy query string false "created_at | click_count | title"
// @Param sortOrder query string false "asc | desc"
// @Param dateRange query string false "all | 7d | 30d | 90d"
// @Success 200 {object} service.URLListing
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/urls [get]
func (h *URLHandler) List(c *gin.Context) {
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

	res, err := GetScope(c).URLs.List(c.Request.Context(), page, filters)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create godoc
// @Summary Shorten a URL
// @Tags urls
// @Accept json
// @Produce json
// @Param request body model.URLCreate true "Target URL and metadata"
// @Success 201 {object} model.URL
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Router /api/urls [post]
func (h *URLHandler) Create(c *gin.Context) {
	var req model.URLCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := GetScope(c).URLs.Create(c.Request.Context(), req)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Get godoc
// @Summary Get a short URL
// @Tags urls
// @Produce json
// @Param id path string true "URL ID"
// @Success 200 {object} model.URL
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/urls/{id} [get]
func (h *URLHandler) Get(c *gin.Context) {
	res, err := GetScope(c).URLs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update godoc
// @Summary Update a short URL
// @Tags urls
// @Accept json
// @Produce json
// @Param id path string true "URL ID"
// @Param request body model.URLUpdate true "Fields to change"
// @Success 200 {object} model.URL
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/urls/{id} [put]
func (h *URLHandler) Update(c *gin.Context) {
	var req model.URLUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := GetScope(c).URLs.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete godoc
// @Summary Delete a short URL
// @Tags urls
// @Param id path string true "URL ID"
// @Success 204
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/urls/{id} [delete]
func (h *URLHandler) Delete(c *gin.Context) {
	if err := GetScope(c).URLs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Analytics godoc
// @Summary URL analytics (30 days, top 10 referrers)
// @Tags analytics
// @Produce json
// @Param id path string true "URL ID"
// @Success 200 {object} service.AnalyticsView
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/urls/{id}/analytics [get]
func (h *URLHandler) Analytics(c *gin.Context) {
	res, err := GetScope(c).URLs.Analytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Dashboard godoc
// @Summary Dashboard stats and recent URLs
// @Tags analytics
// @Produce json
// @Success 200 {object} service.DashboardView
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/analytics/dashboard [get]
func (h *URLHandler) Dashboard(c *gin.Context) {
	res, err := GetScope(c).URLs.Dashboard(c.Request.Context())
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
