package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/service"
)

type RouterConfig struct {
	AllowedOrigins []string
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// OpenAPI mounts the generated document at /openapi.json.
	OpenAPI bool
}

func NewRouter(deps Deps, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(Tracing(deps.TracerProvider, deps.Propagator))
	if deps.Logger != nil {
		router.Use(RequestLogger(deps.Logger))
	}
	router.Use(CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/ping", Ping)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics))
	}
	if cfg.OpenAPI {
		router.GET("/openapi.json", OpenAPIDoc)
	}

	sessions := NewSessionHandler(deps.Checker)
	router.GET("/api/auth/session", sessions.Status)
	router.DELETE("/api/auth/session", sessions.Clear)

	scoped := router.Group("/")
	scoped.Use(ScopeMiddleware(deps))
	scoped.GET("/", Root)

	authHandler := NewAuthHandler()
	oauthHandler := NewOAuthHandler()
	urlHandler := NewURLHandler()
	pageHandler := NewPageHandler()

	api := scoped.Group("/api")
	{
		api.GET("/auth/me", authHandler.State)
		api.POST("/auth/sign-in", authHandler.SignIn)
		api.POST("/auth/sign-up", authHandler.SignUp)
		api.POST("/auth/sign-out", authHandler.SignOut)
		api.GET("/auth/profile", authHandler.Profile)
		api.POST("/auth/resend-verification-email", authHandler.ResendVerification)
		api.GET("/auth/google/url", oauthHandler.AuthURL)

		api.GET("/urls", urlHandler.List)
		api.POST("/urls", urlHandler.Create)
		api.GET("/urls/:id", urlHandler.Get)
		api.PUT("/urls/:id", urlHandler.Update)
		api.DELETE("/urls/:id", urlHandler.Delete)
		api.GET("/urls/:id/analytics", urlHandler.Analytics)
		api.GET("/analytics/dashboard", urlHandler.Dashboard)
	}

	scoped.GET(service.SignInRoute, pageHandler.AuthPage("sign-in"))
	scoped.GET(service.SignUpRoute, pageHandler.AuthPage("sign-up"))
	scoped.GET("/auth/google", oauthHandler.Start)
	scoped.GET("/auth/callback/google", oauthHandler.Callback)

	protected := scoped.Group("/")
	protected.Use(RouteGuard())
	{
		protected.GET(service.AppRoute, pageHandler.Dashboard)
		protected.GET("/dashboard/urls", pageHandler.URLs)
		protected.GET("/dashboard/urls/:id/analytics", pageHandler.URLAnalytics)
		protected.GET("/profile", pageHandler.Profile)
		protected.GET(service.InactiveRoute, pageHandler.StatusPage("inactive"))
		protected.GET(service.AccountStatusRoute, pageHandler.StatusPage("account-status"))
	}

	return router
}
