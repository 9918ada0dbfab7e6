// Package token issues and verifies the two credential token variants:
// short-lived access tokens and longer-lived refresh tokens, each signed with
// its own secret. Tokens are stateless; expiry is the only invalidation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens alike;
// callers only distinguish them in the user-facing message.
var ErrInvalidToken = errors.New("token invalid or expired")

const (
	AccessTTL = time.Hour
	// tokens minted through the refresh endpoint live shorter
	RefreshedAccessTTL = 10 * time.Minute
	RefreshTTL         = 7 * 24 * time.Hour
)

// Claims carried by both token variants.
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{accessSecret: []byte(accessSecret), refreshSecret: []byte(refreshSecret)}
}

func (m *Manager) IssueAccess(id uint, email string) (string, error) {
	return sign(m.accessSecret, id, email, AccessTTL)
}

func (m *Manager) IssueRefresh(id uint, email string) (string, error) {
	return sign(m.refreshSecret, id, email, RefreshTTL)
}

func (m *Manager) VerifyAccess(tokenStr string) (*Claims, error) {
	return verify(m.accessSecret, tokenStr)
}

func (m *Manager) VerifyRefresh(tokenStr string) (*Claims, error) {
	return verify(m.refreshSecret, tokenStr)
}

// Refresh exchanges a valid refresh token for a new short-lived access token
// scoped to the same claims.
func (m *Manager) Refresh(refreshToken string) (string, error) {
	claims, err := m.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return sign(m.accessSecret, claims.ID, claims.Email, RefreshedAccessTTL)
}

func sign(secret []byte, id uint, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verify(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
