package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/shared/auth"
	"portfolio-backend/internal/shared/server/respond"
)

const adminEmailKey = "adminEmail"

// RequireAdmin validates the Bearer session token and marks the request
// context as write-authorized for the document store. Requests without a
// valid admin token are rejected with 401.
func RequireAdmin(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if !strings.HasPrefix(header, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		claims, err := auth.VerifyAdminToken(jwtSecret, token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(adminEmailKey, claims.Subject)
		c.Request = c.Request.WithContext(docstore.WithAdmin(c.Request.Context()))
		c.Next()
	}
}

// AdminEmailFromContext fetches the admin email set by RequireAdmin.
func AdminEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(adminEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}
