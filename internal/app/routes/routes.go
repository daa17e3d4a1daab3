package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mertcan/coursehub/internal/app/controllers"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	curriculumController *controllers.CurriculumController,
	uploadController *controllers.UploadController,
	adminController *controllers.AdminController,
	taxonomyController *controllers.TaxonomyController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", taxonomyController.GetCategories)
		categories.GET("/:id/subjects", taxonomyController.GetSubjects)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)
		authenticated.POST("/auth/logout", authController.Logout)

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourse)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
			courses.POST("/:id/submit", courseController.SubmitCourse)

			// Curriculum tree under a course
			courses.POST("/:id/units", curriculumController.AddUnit)
			courses.DELETE("/:id/units/:unitId", curriculumController.RemoveUnit)
			courses.POST("/:id/units/:unitId/lessons", curriculumController.AddLesson)
			courses.DELETE("/:id/units/:unitId/lessons/:lessonId", curriculumController.RemoveLesson)
		}

		uploads := authenticated.Group("/uploads")
		{
			uploads.POST("/video", uploadController.UploadVideo)
			uploads.POST("/pdf", uploadController.UploadPDF)
			uploads.POST("/image", uploadController.UploadImage)
		}

		// Admin-only review pipeline
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.GET("/courses/pending", adminController.ListPendingCourses)
			admin.POST("/courses/:id/approve", adminController.ApproveCourse)
			admin.POST("/courses/:id/reject", adminController.RejectCourse)
			admin.POST("/courses/:id/toggle", adminController.TogglePublished)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
