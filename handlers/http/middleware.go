package httpHandler

import (
	"blog-server/auth"
	"blog-server/entities"
	"blog-server/usecases"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// Protect gates a route behind a valid bearer token. The token's id claim is
// resolved to a stored user and attached to the request context; handlers
// behind the gate can always assume CurrentUser returns a user. The gate
// never mutates state.
func Protect(users *usecases.AuthUseCase, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authorized, no token",
			})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, err := auth.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authorized, token failed",
			})
			return
		}

		user, err := users.GetUser(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Not authorized, token failed",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Protect, or nil on an unprotected
// route.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entities.User)
	if !ok {
		return nil
	}
	return user
}
