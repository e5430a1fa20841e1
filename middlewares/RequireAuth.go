package middlewares

import (
	"net/http"
	"strings"

	"github.com/Srinandan2003/CollabSphere/helper"
	"github.com/Srinandan2003/CollabSphere/services"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// RequireAuth accepts a bearer token from the Authorization header or
// the token cookie, validates it and loads the user into the context.
func RequireAuth(users *services.UserService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := helper.ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
