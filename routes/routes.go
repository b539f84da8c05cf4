package routes

import (
	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/controllers"
	"github.com/ErjonAhmetaj/FitCoachAI/middlewares"
	"github.com/ErjonAhmetaj/FitCoachAI/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	checkinSvc := services.NewCheckinService(config.DB)
	friendSvc := services.NewFriendService(config.DB)
	aiSvc := services.NewAIService()

	checkinCtl := controllers.NewCheckinController(checkinSvc)
	friendCtl := controllers.NewFriendController(friendSvc, checkinSvc)
	aiCtl := controllers.NewAIController(aiSvc, checkinSvc)
	goalCtl := controllers.NewWeightGoalController(checkinSvc)

	api := r.Group("/api")
	{
		api.POST("/register", controllers.Register)
		api.POST("/login", controllers.Login)
		api.POST("/forgot-password", controllers.ForgotPassword)
		api.POST("/reset-password", controllers.ResetPassword)
	}

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/profile", controllers.GetProfile)
		protected.PUT("/profile", controllers.UpdateProfile)

		protected.POST("/checkin", checkinCtl.CreateCheckIn)
		protected.GET("/checkins", checkinCtl.ListCheckIns)
		protected.GET("/progress", checkinCtl.GetProgress)

		protected.GET("/weight-goal", goalCtl.GetWeightGoal)
		protected.PUT("/weight-goal", goalCtl.UpdateWeightGoal)

		protected.GET("/ai/analysis", aiCtl.GetAnalysis)
		protected.POST("/ai/question", aiCtl.AskQuestion)
		protected.POST("/ai/workout", aiCtl.RecommendWorkout)

		protected.GET("/users/search", friendCtl.SearchUsers)
		protected.POST("/friends/add", friendCtl.AddFriend)
		protected.GET("/friends", friendCtl.ListFriends)
		protected.GET("/friends/checkins", friendCtl.FriendCheckIns)
	}

	return r
}
