package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context. userRoleKey stores the role claim alongside it.
const (
	userIDKey   = contextKey("userID")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return userIDFromCtx(c.Request.Context())
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	roleVal := c.Request.Context().Value(userRoleKey)
	role, ok := roleVal.(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// CreatorUserID resolves the acting user's ID for audit stamping. It returns
// the empty string when the request ran without an authenticated identity.
func CreatorUserID(c *gin.Context) string {
	userID, _ := GetUserIDFromContext(c)
	return userID
}

func userIDFromCtx(ctx context.Context) (string, bool) {
	userIDVal := ctx.Value(userIDKey)
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
