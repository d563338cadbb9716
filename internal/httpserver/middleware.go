package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ctxKey int

const userCtxKey ctxKey = iota

// authRequired resolves the session token once at request entry and threads
// the user id through the request context. Cart and order handlers never do
// their own session lookup.
func authRequired(auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("token")
		userID, err := auth.VerifySession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "not authorized, login again"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func userIDFrom(c *gin.Context) (string, bool) {
	id, ok := c.Request.Context().Value(userCtxKey).(string)
	return id, ok && id != ""
}
