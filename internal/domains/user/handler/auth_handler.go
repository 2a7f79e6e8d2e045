package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"bookapp-backend/internal/domains/user"
	"bookapp-backend/internal/shared/middleware"
	"bookapp-backend/internal/shared/response"
)

// AuthHandler owns the signup/login/logout flows and the auth cookies.
type AuthHandler struct {
	service user.Service
	auth    middleware.AuthConfig
}

// NewAuthHandler wires the account service and cookie configuration.
func NewAuthHandler(service user.Service, auth middleware.AuthConfig) *AuthHandler {
	return &AuthHandler{service: service, auth: auth}
}

// ShowSignup - GET /signup
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	response.View(c, http.StatusOK, gin.H{"page": "signup"})
}

// Signup - POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var form user.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		response.FormError(c, "Invalid form submission", err.Error())
		return
	}

	_, err := h.service.Signup(c.Request.Context(), form)
	switch {
	case err == nil:
		response.RedirectWithFlash(c, middleware.LoginPath,
			response.FlashSuccess, "Account created. Please log in.")

	case errors.Is(err, user.ErrAccountExists):
		response.FormError(c, "Email or username already exists", nil)

	case isValidationError(err):
		response.FormError(c, "Please correct the errors below", err)

	default:
		log.Error().Err(err).Msg("signup failed")
		response.InternalServerError(c, "Could not create account. Please try again.")
	}
}

// ShowLogin - GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	response.View(c, http.StatusOK, gin.H{
		"page": "login",
		"next": middleware.SafeNextPath(c.Query("next")),
	})
}

// Login - POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form user.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		response.FormError(c, "Invalid form submission", err.Error())
		return
	}

	dto, err := h.service.Login(c.Request.Context(), form)
	switch {
	case err == nil:
		// fall through to session establishment below

	case errors.Is(err, user.ErrInvalidCredentials):
		response.FormError(c, "Invalid email or password", nil)
		return

	case isValidationError(err):
		response.FormError(c, "Please correct the errors below", err)
		return

	default:
		log.Error().Err(err).Msg("login failed")
		response.InternalServerError(c, "Could not log in. Please try again.")
		return
	}

	ctx := c.Request.Context()
	sessionToken, err := h.auth.Sessions.Issue(ctx, dto.ID)
	if err != nil {
		log.Error().Err(err).Msg("session issue failed")
		response.InternalServerError(c, "Could not log in. Please try again.")
		return
	}
	h.auth.SetSessionCookie(c, sessionToken)

	if form.RememberMe() {
		rememberToken, err := h.auth.Tokens.GenerateRememberToken(dto.ID.String())
		if err != nil {
			// The live session still works; only persistence is lost.
			log.Warn().Err(err).Msg("remember token generation failed")
		} else {
			h.auth.SetRememberCookie(c, rememberToken)
		}
	}

	target := middleware.SafeNextPath(c.Query("next"))
	if target == "" {
		target = "/"
	}
	response.RedirectWithFlash(c, target, response.FlashSuccess, "Logged in successfully")
}

// Logout - GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionToken, err := c.Cookie(middleware.SessionCookieName); err == nil && sessionToken != "" {
		if err := h.auth.Sessions.Revoke(c.Request.Context(), sessionToken); err != nil {
			log.Warn().Err(err).Msg("session revoke failed")
		}
	}
	h.auth.ClearAuthCookies(c)

	response.RedirectWithFlash(c, middleware.LoginPath, response.FlashSuccess, "Logged out")
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
