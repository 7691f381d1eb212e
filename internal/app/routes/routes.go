package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ycelik/clinicore/internal/app/controllers"
	"github.com/ycelik/clinicore/internal/app/models"
	"github.com/ycelik/clinicore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	doctorController *controllers.DoctorController,
	staffController *controllers.StaffController,
	appointmentController *controllers.AppointmentController,
	fileController *controllers.FileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/validate", authController.Validate)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		// Appointment routes
		appointments := authenticated.Group("/appointments")
		{
			appointments.GET("", appointmentController.GetAll)
			appointments.GET("/:id", appointmentController.GetByID)
			appointments.POST("", appointmentController.Create)
			appointments.PUT("/:id", appointmentController.Update)
			appointments.DELETE("/:id", appointmentController.Delete)
		}

		// Medical file routes. The per-patient ownership gate lives in the
		// service, not here: any authenticated user may hit these endpoints
		// and the policy decides per file.
		files := authenticated.Group("/file")
		{
			files.GET("", fileController.ListAll)
			files.POST("/upload", fileController.Upload)
			files.GET("/download/:id", fileController.Download)
			files.GET("/preview/:id", fileController.Preview)
			files.GET("/info/:id", fileController.GetInfo)
			files.GET("/patient/:patientId", fileController.ListByPatient)
			files.PUT("/:id", fileController.Update)
			files.DELETE("/:id", fileController.Delete)
		}

		// Patient routes
		patients := authenticated.Group("/patient")
		{
			patients.GET("", patientController.GetAll)
			patients.GET("/:id", patientController.GetByID)
			patients.POST("", patientController.Create)
			patients.PUT("/:id", patientController.Update)
			patients.DELETE("/:id", patientController.Delete)
		}

		// Doctor routes
		doctors := authenticated.Group("/doctor")
		{
			doctors.GET("", doctorController.GetAll)
			doctors.GET("/:id", doctorController.GetByID)
			doctors.POST("", doctorController.Create)
			doctors.PUT("/:id", doctorController.Update)
			doctors.DELETE("/:id", doctorController.Delete)
		}

		// Staff routes
		staff := authenticated.Group("/staff")
		{
			staff.GET("", staffController.GetAll)
			staff.GET("/:id", staffController.GetByID)
			staff.POST("", staffController.Create)
			staff.PUT("/:id", staffController.Update)
			staff.DELETE("/:id", staffController.Delete)
		}

		// User administration routes (Admin only)
		users := authenticated.Group("/user")
		users.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			users.GET("", userController.GetAll)
			users.GET("/:id", userController.GetByID)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}
	}
}
