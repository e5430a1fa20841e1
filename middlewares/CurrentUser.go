package middlewares

import (
	"github.com/Srinandan2003/CollabSphere/models"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user RequireAuth stored on the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
