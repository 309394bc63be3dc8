package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/session"
)

// SessionHandler is the session oracle. It is the only endpoint that looks
// at the HTTP-only session cookie on behalf of the browser.
type SessionHandler struct {
	checker *session.Checker
}

func NewSessionHandler(checker *session.Checker) *SessionHandler {
	return &SessionHandler{checker: checker}
}

// Status godoc
// @Summary Session probe
// @Description Reports whether the session cookie is present and usable.
// @Tags session
// @Produce json
// @Success 200 {object} model.SessionResponse
// @Router /api/auth/session [get]
func (h *SessionHandler) Status(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, h.checker.Status(c.Request))
}

// Clear godoc
// @Summary Clear the session cookie
// @Description Expires the session cookie. Always succeeds.
// @Tags session
// @Produce json
// @Success 200 {object} model.SessionResponse
// @Router /api/auth/session [delete]
func (h *SessionHandler) Clear(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, h.checker.Clear(c.Writer))
}
