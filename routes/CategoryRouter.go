package routes

import (
	"github.com/Srinandan2003/CollabSphere/controllers"

	"github.com/gin-gonic/gin"
)

func CategoryRouter(api *gin.RouterGroup, categories *controllers.CategoryController, requireAuth gin.HandlerFunc) {
	api.GET("/categories", categories.List)

	protected := api.Group("", requireAuth)
	protected.POST("/categories", categories.Create)
	protected.DELETE("/categories/:id", categories.Delete)
}
