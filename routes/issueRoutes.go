package routes

import (
	"civic-reporter/controllers"
	"civic-reporter/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue collection routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issues")
	{
		issue.GET("", controllers.ListIssues)
		issue.POST("", middlewares.AuthMiddleware(), middlewares.IssueRateLimiter(20), controllers.CreateIssue)
		issue.PUT("/:id", middlewares.AuthMiddleware(), controllers.UpdateIssue)
		issue.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteIssue)
		issue.POST("/:id/status", middlewares.AuthMiddleware(), middlewares.AdminOnly(), controllers.UpdateIssueStatus)
	}
}
