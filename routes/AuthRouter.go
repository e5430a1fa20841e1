package routes

import (
	"github.com/Srinandan2003/CollabSphere/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRouter(api *gin.RouterGroup, auth *controllers.AuthController, requireAuth gin.HandlerFunc) {
	users := api.Group("/users")

	users.POST("/signUp", auth.SignUp)
	users.POST("/signIn", auth.SignIn)
	users.POST("/logOut", auth.LogOut)
	users.GET("/profile", requireAuth, auth.Profile)
}
