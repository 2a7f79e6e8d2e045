package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookapp-backend/internal/shared/response"
	"bookapp-backend/internal/shared/session"
	"bookapp-backend/pkg/token"
)

const (
	// SessionCookieName holds the opaque server-side session token.
	// MaxAge 0: the browser drops it on close.
	SessionCookieName = "session_id"

	// RememberCookieName holds the signed remember-me token that
	// survives browser restarts.
	RememberCookieName = "remember_token"

	// ContextKeyUserID is where the middleware stores the authenticated
	// user's id for handlers.
	ContextKeyUserID = "user_id"

	// LoginPath is where anonymous callers are sent.
	LoginPath = "/login"
)

// AuthConfig wires the session store and remember-token manager into the
// auth middleware and the login/logout handlers.
type AuthConfig struct {
	Sessions     *session.Store
	Tokens       *token.Manager
	CookieSecure bool
}

// SetSessionCookie installs the session cookie. remember controls whether a
// persistent remember-me cookie is issued alongside it.
func (cfg AuthConfig) SetSessionCookie(c *gin.Context, sessionToken string) {
	c.SetCookie(SessionCookieName, sessionToken, 0, "/", "", cfg.CookieSecure, true)
}

// SetRememberCookie installs the long-lived remember-me cookie.
func (cfg AuthConfig) SetRememberCookie(c *gin.Context, rememberToken string) {
	maxAge := int(cfg.Tokens.TTL().Seconds())
	c.SetCookie(RememberCookieName, rememberToken, maxAge, "/", "", cfg.CookieSecure, true)
}

// ClearAuthCookies removes both cookies on logout.
func (cfg AuthConfig) ClearAuthCookies(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", cfg.CookieSecure, true)
	c.SetCookie(RememberCookieName, "", -1, "/", "", cfg.CookieSecure, true)
}

// RequireAuth guards protected routes.
//
// Resolution order:
//  1. Live session cookie -> resolve against the session store.
//  2. Valid remember-me cookie -> silently mint a fresh session.
//  3. Neither -> flash + redirect to /login with the original path in ?next=.
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sessionToken, err := c.Cookie(SessionCookieName); err == nil && sessionToken != "" {
			userID, found, err := cfg.Sessions.Resolve(ctx, sessionToken)
			if err != nil {
				log.Error().Err(err).Msg("session lookup failed")
				response.InternalServerError(c, "Something went wrong. Please try again.")
				c.Abort()
				return
			}
			if found {
				// Sliding expiry: activity keeps the session alive.
				if err := cfg.Sessions.Touch(ctx, sessionToken); err != nil {
					log.Warn().Err(err).Msg("session touch failed")
				}
				c.Set(ContextKeyUserID, userID)
				c.Next()
				return
			}
		}

		// Session gone or absent: try the remember-me cookie.
		if rememberToken, err := c.Cookie(RememberCookieName); err == nil && rememberToken != "" {
			if userIDStr, err := cfg.Tokens.ValidateRememberToken(rememberToken); err == nil {
				if userID, err := uuid.Parse(userIDStr); err == nil {
					sessionToken, err := cfg.Sessions.Issue(ctx, userID)
					if err != nil {
						log.Error().Err(err).Msg("session issue from remember token failed")
						response.InternalServerError(c, "Something went wrong. Please try again.")
						c.Abort()
						return
					}
					cfg.SetSessionCookie(c, sessionToken)
					c.Set(ContextKeyUserID, userID)
					c.Next()
					return
				}
			}
		}

		redirectToLogin(c)
	}
}

// CurrentUserID returns the authenticated user's id set by RequireAuth.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// SafeNextPath validates a post-login redirect target. Only local paths are
// allowed, never absolute URLs, so login cannot be used as an open redirect.
func SafeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func redirectToLogin(c *gin.Context) {
	response.SetFlash(c, response.FlashError, "Please log in to access this page.")

	target := LoginPath
	if next := c.Request.URL.Path; next != "" && next != "/" {
		if raw := c.Request.URL.RawQuery; raw != "" {
			next += "?" + raw
		}
		target += "?next=" + url.QueryEscape(next)
	}

	c.Redirect(http.StatusFound, target)
	c.Abort()
}
