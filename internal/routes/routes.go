package routes

import (
	"ncd-clinic-server/internal/config"
	"ncd-clinic-server/internal/handlers"
	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/repository"
	"ncd-clinic-server/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repository.NewUserRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	homeVisitRepo := repository.NewHomeVisitRepo(db)

	// Services
	userService := service.NewUserService(userRepo)
	patientService := service.NewPatientService(patientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, patientRepo)
	homeVisitService := service.NewHomeVisitService(homeVisitRepo)
	importService := service.NewImportService(patientRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, userRepo, cfg)
	userHandler := handlers.NewUserHandler(userService)
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	homeVisitHandler := handlers.NewHomeVisitHandler(homeVisitService)
	importHandler := handlers.NewImportHandler(importService)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// Staff account management; the service enforces admin-only
		userRoutes := private.Group("/users")
		{
			userRoutes.POST("", userHandler.CreateUser)
			userRoutes.GET("", userHandler.GetUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", userHandler.UpdateUser)
			userRoutes.DELETE("/:id", userHandler.DeleteUser)
		}

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
			patientRoutes.POST("/upload", importHandler.UploadPatients)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
			appointmentRoutes.PUT("/:id/visit", appointmentHandler.RecordVisit)
			appointmentRoutes.PUT("/:id/refer-back", appointmentHandler.ReferBack)
		}

		homeVisitRoutes := private.Group("/home-visits")
		{
			homeVisitRoutes.POST("", homeVisitHandler.CreateHomeVisit)
			homeVisitRoutes.GET("", homeVisitHandler.GetHomeVisits)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
