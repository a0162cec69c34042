package routes

import (
	"civic-reporter/controllers"
	"civic-reporter/middlewares"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		auth.POST("/logout", middlewares.AuthMiddleware(), controllers.LogoutUser)
	}
}
