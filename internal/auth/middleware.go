package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gin context keys populated by the middleware.
const (
	CtxUserID = "userId"
	CtxEmail  = "email"
	CtxRole   = "role"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// authenticate verifies the bearer token and attaches the claims to the
// context. Aborts with a 401 when the token is missing or bad.
func authenticate(c *gin.Context, tm *TokenManager) (*Claims, bool) {
	token, ok := bearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return nil, false
	}

	claims, err := tm.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return nil, false
	}

	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, claims.Role)
	return claims, true
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, tm); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally checks the role claim on every call.
func RequireAdmin(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, tm)
		if !ok {
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and otherwise
// lets the request proceed anonymously.
func OptionalAuth(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tm.Verify(token); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxEmail, claims.Email)
				c.Set(CtxRole, claims.Role)
			}
		}
		c.Next()
	}
}
