package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shortenurl/web/internal/model"
	"github.com/shortenurl/web/internal/service"
)

const (
	redirectParam      = "redirectUrl"
	msgSignUpComplete  = "Account created. Please check your email to verify your account."
	msgVerificationOut = "Verification email sent. Please check your inbox."
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// State godoc
// @Summary Current auth state
// @Description Runs the session check once for this request. JSON callers send the page they are on in X-Page-Path.
// @Tags auth
// @Produce json
// @Param X-Page-Path header string false "Page the visitor is on"
// @Success 200 {object} model.AuthStateResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) State(c *gin.Context) {
	scope := GetScope(c)
	scope.Auth.Initialize(c.Request.Context())
	c.JSON(http.StatusOK, authStateResponse(scope))
}

// SignIn godoc
// @Summary Sign in
// @Description Failures come back in the error field; the session cookie is relayed on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param redirectUrl query string false "Same-site path to land on after sign-in"
// @Param request body model.LoginInput true "Email and password"
// @Success 200 {object} model.SignInResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.SignInResponse
// @Failure 403 {object} model.SignInResponse
// @Failure 429 {object} model.SignInResponse
// @Failure 502 {object} model.SignInResponse
// @Router /api/auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	scope := GetScope(c)
	result := scope.Auth.SignIn(c.Request.Context(), req)
	if result.Error != nil {
		c.JSON(signInStatus(result.Error.Code), model.SignInResponse{
			Error:   result.Error,
			Notices: scope.Notices(),
		})
		return
	}

	c.JSON(http.StatusOK, model.SignInResponse{
		User:     result.User,
		Redirect: postSignInRedirect(result.User, c.Query(redirectParam)),
		Notices:  scope.Notices(),
	})
}

// SignUp godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterInput true "Account details"
// @Success 201 {object} model.SignInResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 422 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/auth/sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	scope := GetScope(c)
	user, err := scope.Auth.SignUp(c.Request.Context(), req)
	if err != nil {
		writeAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.SignInResponse{
		User:     user,
		Redirect: service.SignInRoute,
		Notices:  []model.Notice{{Level: string(service.NoticeSuccess), Message: msgSignUpComplete}},
	})
}

// SignOut godoc
// @Summary Sign out
// @Description Never fails from the visitor's point of view.
// @Tags auth
// @Produce json
// @Success 200 {object} model.SignOutResponse
// @Router /api/auth/sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	scope := GetScope(c)
	scope.Auth.SignOut(c.Request.Context())
	c.JSON(http.StatusOK, model.SignOutResponse{
		Status:   "signed_out",
		Redirect: scope.Redirect(),
		Notices:  scope.Notices(),
	})
}

// Profile godoc
// @Summary Account profile
// @Tags auth
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := GetScope(c).Client.Profile(c.Request.Context())
	if err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ResendVerification godoc
// @Summary Resend the verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ResendVerificationRequest true "Account email"
// @Success 200 {object} model.Notice
// @Failure 400 {object} model.ErrorResponse
// @Failure 429 {object} model.ErrorResponse
// @Router /api/auth/resend-verification-email [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req model.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := GetScope(c).Client.ResendVerificationEmail(c.Request.Context(), req.Email); err != nil {
		writeAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Notice{Level: string(service.NoticeSuccess), Message: msgVerificationOut})
}

func authStateResponse(scope *Scope) model.AuthStateResponse {
	state := scope.Auth.State()
	return model.AuthStateResponse{
		IsAuthenticated: state.IsAuthenticated,
		IsLoading:       state.IsLoading,
		IsInitialized:   state.IsInitialized,
		User:            state.User,
		Error:           state.Error,
		Redirect:        scope.Redirect(),
		Notices:         scope.Notices(),
	}
}

// postSignInRedirect honours redirectUrl only for active accounts; other
// statuses always land on their status page.
func postSignInRedirect(user *model.User, requested string) string {
	if user.Status == model.UserStatusActive {
		if target, ok := service.SafeRedirect(requested); ok && !service.IsAuthRoute(target) {
			return target
		}
	}
	return service.StatusRoute(user.Status)
}
