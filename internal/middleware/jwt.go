package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"todosapp/internal/token"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// JWTAuthMiddleware resolves the caller identity from the Authorization
// header. Missing, malformed and expired tokens are all rejected with the
// same 401 body.
func JWTAuthMiddleware(tokens token.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
			return
		}

		id, err := tokens.ValidateAccessToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate user"})
			return
		}

		c.Set(ContextUserID, id.UserID)
		c.Set(ContextUsername, id.Username)
		c.Next()
	}
}

// CallerIdentity reads the identity the middleware stored on the context.
func CallerIdentity(c *gin.Context) (token.Identity, bool) {
	userID, ok := c.Get(ContextUserID)
	username, ok2 := c.Get(ContextUsername)
	if !ok || !ok2 {
		return token.Identity{}, false
	}
	return token.Identity{UserID: userID.(uint), Username: username.(string)}, true
}
