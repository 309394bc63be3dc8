package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

type OAuthHandler struct{}

func NewOAuthHandler() *OAuthHandler {
	return &OAuthHandler{}
}

// AuthURL godoc
// @Summary Google authorization URL
// @Description Returns the provider URL for clients that navigate themselves.
// @Tags oauth
// @Produce json
// @Success 200 {object} model.GoogleOAuthURL
// @Failure 502 {object} model.ErrorResponse
// @Router /api/auth/google/url [get]
func (h *OAuthHandler) AuthURL(c *gin.Context) {
	authURL, err := GetScope(c).OAuth.AuthURL(c.Request.Context())
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.GoogleOAuthURL{AuthURL: authURL})
}

// Start sends the browser to the provider.
func (h *OAuthHandler) Start(c *gin.Context) {
	authURL, err := GetScope(c).OAuth.AuthURL(c.Request.Context())
	if err != nil {
		c.Redirect(http.StatusFound, oauthFailure(err))
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// Callback completes the provider round trip. The backend sets the session
// cookie on success; it is relayed with the redirect.
func (h *OAuthHandler) Callback(c *gin.Context) {
	scope := GetScope(c)
	result, err := scope.OAuth.Complete(c.Request.Context(), service.CallbackParams{
		Code:  c.Query("code"),
		State: c.Query("state"),
		Error: c.Query("error"),
	})
	if err != nil {
		c.Redirect(http.StatusFound, oauthFailure(err))
		return
	}
	c.Redirect(http.StatusFound, result.Redirect)
}

func oauthFailure(err error) string {
	return service.OAuthFailedRoute + "&message=" + url.QueryEscape(service.OAuthErrorMessage(err))
}
