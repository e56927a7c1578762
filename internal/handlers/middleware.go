package handlers

import (
	"net/http"
	"strings"

	"quizhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "adminClaims"

// RequireAdmin verifies the bearer credential and stores the claims in the
// request context. The principal is request-scoped; nothing about the
// credential lives in global state.
func RequireAdmin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "UNAUTHORIZED",
			})
			c.Abort()
			return
		}
		claims, err := auth.Verify(token)
		if err != nil {
			writeError(c, err)
			c.Abort()
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims set by RequireAdmin.
func ClaimsFrom(c *gin.Context) *service.Claims {
	if v, ok := c.Get(claimsContextKey); ok {
		if claims, ok := v.(*service.Claims); ok {
			return claims
		}
	}
	return nil
}

// bearerToken accepts both "Bearer <token>" and a bare token header.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return header
}
