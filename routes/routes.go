package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ajaychandraavanshi66-eng/Goal-Planner/controllers"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/middleware"
	"github.com/ajaychandraavanshi66-eng/Goal-Planner/services"
)

func RegisterRoutes(r *gin.Engine, cache *services.AnalyticsCache) {
	authController := controllers.AuthController{}
	settingsController := controllers.SettingsController{}
	goalController := controllers.NewGoalController(cache)
	taskController := controllers.NewTaskController(cache)
	completionController := controllers.NewCompletionController(cache)
	analyticsController := controllers.NewAnalyticsController(cache)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// Authenticated routes
	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/auth/me", authController.Me)

		private.GET("/goals", goalController.GetGoals)
		private.POST("/goals", goalController.CreateGoal)
		private.PUT("/goals/:goalId", goalController.UpdateGoal)
		private.DELETE("/goals/:goalId", goalController.DeleteGoal)
		private.GET("/goals/:goalId/progress", goalController.GetGoalProgress)

		private.GET("/tasks", taskController.GetTasks)
		private.POST("/tasks", taskController.CreateTask)
		private.PUT("/tasks/:taskId", taskController.UpdateTask)
		private.DELETE("/tasks/:taskId", taskController.DeleteTask)

		private.GET("/completions", completionController.GetCompletions)
		private.POST("/completions/toggle", completionController.ToggleCompletion)
		private.DELETE("/completions/:completionId", completionController.DeleteCompletion)

		private.GET("/settings", settingsController.GetSettings)
		private.PUT("/settings", settingsController.UpdateSettings)

		private.GET("/analytics/daily", analyticsController.GetDailyStats)
		private.GET("/analytics/weekly", analyticsController.GetWeeklyStats)
		private.GET("/analytics/monthly", analyticsController.GetMonthlyStats)
		private.GET("/analytics/goals", analyticsController.GetGoalPerformance)
		private.GET("/analytics/streak", analyticsController.GetStreakStats)
	}

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "server is running"})
	})
}
