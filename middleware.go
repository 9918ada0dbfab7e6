package main

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// registrationReferers lists the frontend paths allowed to upload a profile
// image before the account exists (signup flow). Anything else goes through
// the full token check.
var registrationReferers = []string{"/registro", "/registrarse"}

// authMiddleware is the access gate: every protected route requires a valid
// bearer access token. Decoded claims are left in the context for handlers.
func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token not provided"})
			c.Abort()
			return
		}
		claims, err := tokens.VerifyAccess(raw)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token invalid or expired"})
			c.Abort()
			return
		}
		c.Set("usuarioID", claims.ID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// uploadGate skips authentication only when the request comes from the
// registration flow; every other origin is gated normally.
func uploadGate() gin.HandlerFunc {
	gate := authMiddleware()
	return func(c *gin.Context) {
		if refererAllowed(c.GetHeader("Referer")) {
			c.Next()
			return
		}
		gate(c)
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tok == "" {
		return "", false
	}
	return tok, true
}

func refererAllowed(referer string) bool {
	if referer == "" {
		return false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return false
	}
	for _, p := range registrationReferers {
		if strings.HasPrefix(u.Path, p) {
			return true
		}
	}
	return false
}
