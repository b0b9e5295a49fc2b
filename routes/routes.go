package routes

import (
	"github.com/jackunq19/daily-fuel-tracker/controllers"
	"github.com/jackunq19/daily-fuel-tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	api := r.Group("/api")

	// Public: food search, diet plan generation, calorie calculator
	api.POST("/food/search", controllers.SearchFoods)
	api.POST("/diet-plan", controllers.GenerateDietPlan)
	api.POST("/calculator", controllers.CalculateCalories)

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	goals := api.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.UpdateGoals)
	}

	workouts := api.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.GET("/week", controllers.ListWorkoutWeek)
		workouts.POST("/days", controllers.CreateWorkoutDay)
		workouts.DELETE("/days/:id", controllers.DeleteWorkoutDay)
		workouts.POST("/days/:id/exercises", controllers.AddExercise)
		workouts.PUT("/sets/:id", controllers.UpdateSet)
		workouts.POST("/exercises/:id/complete", controllers.CompleteExercise)
	}

	return r
}
