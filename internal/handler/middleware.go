package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shortenurl/web/internal/client"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
	"github.com/shortenurl/web/internal/session"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	scopeKey        = "request_scope"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	pagePathHeader  = "X-Page-Path"
)

// Deps are the process-wide pieces every request scope is built from.
type Deps struct {
	Checker *session.Checker
	Backend client.Settings
	Metrics *client.Metrics
	Guard   service.CallbackGuard
	Logger  *slog.Logger
	// TracerProvider and Propagator default to the otel globals.
	TracerProvider trace.TracerProvider
	Propagator     propagation.TextMapPropagator
}

// Scope is everything one browser request owns: its cookies, its backend
// client (and so its refresh coordinator), and its auth state machine.
type Scope struct {
	Session *session.Session
	Client  *client.Client
	Auth    *service.AuthService
	URLs    *service.URLService
	OAuth   *service.OAuthService

	nav     *service.RedirectRecorder
	notices *service.NoticeBuffer
}

func (s *Scope) Redirect() string {
	return s.nav.Target()
}

func (s *Scope) Notices() []model.Notice {
	return s.notices.Notices()
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Tracing continues the caller's trace (if any) with a server span, so the
// backend calls made for this request share its trace id.
func Tracing(tp trace.TracerProvider, prop propagation.TextMapPropagator) gin.HandlerFunc {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if prop == nil {
		prop = otel.GetTextMapPropagator()
	}
	tracer := tp.Tracer("github.com/shortenurl/web/internal/handler")

	return func(c *gin.Context) {
		ctx := prop.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+c.Request.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("request_id", GetRequestID(c)),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		if route := c.FullPath(); route != "" {
			span.SetName(c.Request.Method + " " + route)
			span.SetAttributes(attribute.String("http.route", route))
		}
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"request_id", GetRequestID(c),
		}
		switch {
		case status >= 500:
			logger.ErrorContext(c.Request.Context(), "request completed", attrs...)
		case status >= 400:
			logger.WarnContext(c.Request.Context(), "request completed", attrs...)
		default:
			logger.InfoContext(c.Request.Context(), "request completed", attrs...)
		}
	}
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				// the session cookie must travel with every call
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, X-Page-Path")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ScopeMiddleware opens the request scope and relays cookie changes back to
// the browser before the response headers go out.
func ScopeMiddleware(deps Deps) gin.HandlerFunc {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		requestID := GetRequestID(c)
		reqLogger := logger.With("request_id", requestID)

		sess := deps.Checker.FromRequest(c.Request)
		api := client.New(deps.Backend,
			client.WithSession(sess),
			client.WithMetrics(deps.Metrics),
			client.WithLogger(reqLogger),
			client.WithRequestID(requestID),
			client.WithTracerProvider(deps.TracerProvider),
			client.WithPropagator(deps.Propagator),
		)

		scope := &Scope{
			Session: sess,
			Client:  api,
			URLs:    service.NewURLService(api),
			OAuth:   service.NewOAuthService(api, deps.Guard, reqLogger),
			nav:     &service.RedirectRecorder{},
			notices: &service.NoticeBuffer{},
		}
		scope.Auth = service.NewAuthService(api, sess,
			service.WithNavigator(scope.nav),
			service.WithNotifier(scope.notices),
			service.WithLogger(reqLogger),
			service.AtPath(pagePath(c)),
		)
		c.Set(scopeKey, scope)

		writer := &relayWriter{ResponseWriter: c.Writer, session: sess}
		c.Writer = writer
		c.Next()

		// nothing written yet (redirect without body, bare status)
		writer.relay()
	}
}

// pagePath is the page the visitor is on. JSON calls report it in a header
// since their own URL is not a page.
func pagePath(c *gin.Context) string {
	if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return c.Request.URL.RequestURI()
	}
	if path, ok := service.SafeRedirect(c.GetHeader(pagePathHeader)); ok {
		return path
	}
	return "/"
}

func GetScope(c *gin.Context) *Scope {
	if value, ok := c.Get(scopeKey); ok {
		if scope, ok := value.(*Scope); ok {
			return scope
		}
	}
	return nil
}

type relayWriter struct {
	gin.ResponseWriter
	session *session.Session
}

func (w *relayWriter) relay() {
	if !w.ResponseWriter.Written() {
		w.session.Relay(w.ResponseWriter.Header())
	}
}

func (w *relayWriter) WriteHeaderNow() {
	w.relay()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *relayWriter) Write(data []byte) (int, error) {
	w.relay()
	return w.ResponseWriter.Write(data)
}

func (w *relayWriter) WriteString(s string) (int, error) {
	w.relay()
	return w.ResponseWriter.WriteString(s)
}

// RouteGuard protects page routes: it initializes the auth state machine
// and lets the request through only when the visitor is authenticated.
func RouteGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := GetScope(c)
		if scope == nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		scope.Auth.Initialize(c.Request.Context())
		state := scope.Auth.State()

		switch service.Guard(state) {
		case service.VerdictLoading:
			c.AbortWithStatusJSON(http.StatusAccepted, loadingResponse())
		case service.VerdictRedirect:
			c.Redirect(http.StatusFound, service.GuardRedirect(scope.Redirect(), c.Request.URL.RequestURI()))
			c.Abort()
		default:
			c.Next()
		}
	}
}
