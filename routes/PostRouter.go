package routes

import (
	"github.com/Srinandan2003/CollabSphere/controllers"

	"github.com/gin-gonic/gin"
)

func PostRouter(api *gin.RouterGroup, posts *controllers.PostController, comments *controllers.CommentController, media *controllers.MediaController, requireAuth gin.HandlerFunc) {
	// public reads
	api.GET("/posts", posts.GetAll)
	api.GET("/posts/search", posts.Search)
	api.GET("/posts/:id", posts.GetByID)
	api.GET("/posts/:id/comments", comments.List)
	api.GET("/media/:id", media.Get)

	// mutations require a signed-in user
	protected := api.Group("", requireAuth)
	protected.POST("/posts", posts.Create)
	protected.PUT("/posts/:id", posts.Update)
	protected.DELETE("/posts/:id", posts.Delete)
	protected.POST("/posts/:id/like", posts.Like)
	protected.PUT("/posts/:id/unlike", posts.Unlike)
	protected.POST("/posts/:id/comments", comments.Add)
	protected.DELETE("/posts/:id/comments/:commentId", comments.Delete)
}
