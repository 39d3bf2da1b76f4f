package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tanvi/examtrack/internal/app/controllers"
	"github.com/tanvi/examtrack/internal/app/models"
	"github.com/tanvi/examtrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	examController *controllers.ExamController,
	registrationController *controllers.RegistrationController,
	predictionController *controllers.PredictionController,
	cutoffController *controllers.CutoffController,
	reminderController *controllers.ReminderController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Exam catalog (public access)
	exams := v1.Group("/exams")
	{
		exams.GET("", examController.GetExams)
		exams.GET("/:id", examController.GetExam)
	}

	// Cutoff browsing (public access)
	cutoffs := v1.Group("/cutoffs")
	{
		cutoffs.GET("", cutoffController.GetCutoffs)
		cutoffs.GET("/branches", cutoffController.GetBranches)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.PUT("/auth/profile", authController.UpdateProfile)

		registrations := authenticated.Group("/registrations")
		{
			registrations.POST("", registrationController.RegisterExam)
			registrations.GET("", registrationController.GetRegistrations)
			registrations.PUT("/:id", registrationController.UpdateRegistration)
			registrations.DELETE("/:id", registrationController.DeleteRegistration)
		}

		predictions := authenticated.Group("/predictions")
		{
			predictions.POST("", predictionController.PredictRank)
			predictions.GET("/history", predictionController.GetHistory)
		}

		reminders := authenticated.Group("/reminders")
		{
			reminders.POST("", reminderController.CreateReminder)
			reminders.GET("", reminderController.GetReminders)
			reminders.POST("/auto-setup", reminderController.AutoSetupReminders)
			reminders.PUT("/:id/read", reminderController.MarkRead)
			reminders.DELETE("/:id", reminderController.DeleteReminder)
		}

		// Admin-only exam catalog management
		examsAdmin := authenticated.Group("/exams")
		examsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			examsAdmin.POST("", examController.CreateExam)
		}
	}
}
