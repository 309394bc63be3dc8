package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

func loadingResponse() model.LoadingResponse {
	return model.LoadingResponse{Status: "loading"}
}

// writeAPIError maps service and backend failures to the JSON error shape.
// Server-side detail never reaches the browser.
func writeAPIError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrInvalidFilter) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: client.CodeClientError})
		return
	}

	apiErr := client.AsAPIError(err)
	if apiErr == nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error", Code: client.CodeServerError})
		return
	}

	res := model.ErrorResponse{
		Error:   apiErr.Message,
		Code:    apiErr.Code,
		Details: apiErr.Issues,
	}
	status := apiErr.Status

	switch {
	case errors.Is(apiErr, client.ErrSessionExpired):
		status = http.StatusUnauthorized
		res.Redirect = service.SignInRedirect(pagePath(c))
	case apiErr.Kind == client.KindNetwork:
		status = http.StatusBadGateway
		if apiErr.Code == client.CodeTimeout {
			status = http.StatusGatewayTimeout
		}
	case apiErr.Kind == client.KindServer:
		status = http.StatusBadGateway
	case apiErr.Kind == client.KindRateLimited:
		if apiErr.RetryAfter > 0 {
			seconds := int64(math.Ceil(apiErr.RetryAfter.Seconds()))
			res.RetryAfter = seconds
			c.Header("Retry-After", strconv.FormatInt(seconds, 10))
		}
	}
	if status == 0 {
		status = http.StatusBadGateway
	}

	c.JSON(status, res)
}

func signInStatus(code string) int {
	switch code {
	case client.CodeUnauthorized:
		return http.StatusUnauthorized
	case client.CodeForbidden:
		return http.StatusForbidden
	case client.CodeValidation:
		return http.StatusUnprocessableEntity
	case client.CodeRateLimited:
		return http.StatusTooManyRequests
	case client.CodeNetworkError, client.CodeServerError, client.CodeInvalidResponse, service.CodeInvalidResponse:
		return http.StatusBadGateway
	case client.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadRequest
	}
}
