package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

// 헬스체크 엔드포인트
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// 루트 엔드포인트: signed-in visitors land on the dashboard
func Root(c *gin.Context) {
	scope := GetScope(c)
	if scope == nil {
		c.JSON(http.StatusOK, model.RootResponse{Status: "ok", Message: "shortenurl web is running"})
		return
	}

	signedIn, err := scope.Session.Probe(c.Request.Context())
	if err == nil && signedIn {
		c.Redirect(http.StatusFound, service.AppRoute)
		return
	}
	c.JSON(http.StatusOK, model.RootResponse{Status: "ok", Message: "shortenurl web is running"})
}
