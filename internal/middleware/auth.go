package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adboard/internal/domain"
	jwtsvc "adboard/internal/pkg/jwt"
	"adboard/internal/pkg/response"
)

// JWTAuth rejects requests without a valid bearer token.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth resolves the caller when a token is present and lets
// anonymous requests through. A token that is present but invalid is still a
// 401 — silently downgrading to anonymous would mask expired credentials.
func OptionalJWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		tokenStr, ok := bearerToken(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
			c.Abort()
			return
		}

		setCaller(c, claims)
		c.Next()
	}
}

// CallerFrom builds the explicit caller value handed into every operation.
// Anonymous when the auth middleware set nothing.
func CallerFrom(c *gin.Context) domain.Caller {
	return domain.Caller{
		ID:      c.GetInt64("user_id"),
		IsAdmin: c.GetBool("is_admin"),
	}
}

func setCaller(c *gin.Context, claims *jwtsvc.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("is_admin", claims.IsAdmin)
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return "", false
	}
	return tokenStr, true
}
