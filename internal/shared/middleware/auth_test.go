package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraCache "bookapp-backend/internal/infrastructure/cache"
	"bookapp-backend/internal/shared/session"
	"bookapp-backend/pkg/token"
)

func newTestAuth(t *testing.T) AuthConfig {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := infraCache.NewRedisCacheFromClient(client)

	return AuthConfig{
		Sessions: session.NewStore(cache, time.Hour),
		Tokens:   token.NewManager("test-secret", 24*time.Hour),
	}
}

func newProtectedRouter(cfg AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/shelf", RequireAuth(cfg), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.String(http.StatusOK, userID.String())
	})
	return router
}

func TestRequireAuthAnonymousRedirects(t *testing.T) {
	cfg := newTestAuth(t)
	router := newProtectedRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shelf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fshelf", w.Header().Get("Location"))
}

func TestRequireAuthAnonymousRedirectKeepsQuery(t *testing.T) {
	cfg := newTestAuth(t)
	router := newProtectedRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shelf?page=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fshelf%3Fpage%3D2", w.Header().Get("Location"))
}

func TestRequireAuthWithSessionCookie(t *testing.T) {
	cfg := newTestAuth(t)
	router := newProtectedRouter(cfg)
	userID := uuid.New()

	sessionToken, err := cfg.Sessions.Issue(context.Background(), userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shelf", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestRequireAuthRemintsFromRememberToken(t *testing.T) {
	cfg := newTestAuth(t)
	router := newProtectedRouter(cfg)
	userID := uuid.New()

	rememberToken, err := cfg.Tokens.GenerateRememberToken(userID.String())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shelf", nil)
	req.AddCookie(&http.Cookie{Name: RememberCookieName, Value: rememberToken})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())

	// A fresh session cookie rides along on the response.
	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
}

func TestRequireAuthRejectsForgedRememberToken(t *testing.T) {
	cfg := newTestAuth(t)
	router := newProtectedRouter(cfg)

	forger := token.NewManager("other-secret", 24*time.Hour)
	forged, err := forger.GenerateRememberToken(uuid.NewString())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/shelf", nil)
	req.AddCookie(&http.Cookie{Name: RememberCookieName, Value: forged})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestSafeNextPath(t *testing.T) {
	assert.Equal(t, "/book/abc", SafeNextPath("/book/abc"))
	assert.Equal(t, "", SafeNextPath(""))
	assert.Equal(t, "", SafeNextPath("https://evil.example.com"))
	assert.Equal(t, "", SafeNextPath("//evil.example.com"))
	assert.Equal(t, "", SafeNextPath("book/abc"))
}
