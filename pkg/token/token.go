package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a remember-me token.
type Claims struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"` // always "remember"
	jwt.RegisteredClaims
}

// Manager signs and validates remember-me tokens. These back the long-lived
// cookie that survives browser restarts; the short-lived Redis session is
// re-established from a valid remember token.
type Manager struct {
	secret string
	ttl    time.Duration
}

// NewManager creates a token manager. ttl bounds how long a remember
// cookie stays valid.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// TTL returns the configured remember-token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// GenerateRememberToken signs a remember token for userID.
func (m *Manager) GenerateRememberToken(userID string) (string, error) {
	claims := Claims{
		UserID: userID,
		Type:   "remember",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(m.secret))
}

// ValidateRememberToken validates a remember token and returns the user ID
// it was issued for.
func (m *Manager) ValidateRememberToken(tokenString string) (string, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Type != "remember" {
		return "", fmt.Errorf("invalid token type: expected remember, got %s", claims.Type)
	}

	return claims.UserID, nil
}
