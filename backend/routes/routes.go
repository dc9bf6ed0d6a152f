package routes

import (
	"planner/backend/config"
	"planner/backend/controllers"
	"planner/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Task routes
	taskController := controllers.NewTaskController(db, cfg)
	tasks := app.Group("/api/tasks", authMiddleware)
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Get("/weekly-summary", taskController.GetWeeklySummary)
	tasks.Put("/:id/toggle", taskController.ToggleTask)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Study routes
	studyController := controllers.NewStudyController(db, cfg)
	app.Get("/api/study", authMiddleware, studyController.GetSessions)
	app.Post("/api/study", authMiddleware, studyController.LogSession)

	// Attendance routes
	attendanceController := controllers.NewAttendanceController(db, cfg)
	attendance := app.Group("/api/attendance", authMiddleware)
	attendance.Post("/check-location", attendanceController.CheckLocation)
	attendance.Get("/", attendanceController.GetAttendance)
	attendance.Post("/", attendanceController.AddAttendance)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg)
	app.Get("/api/admin/dashboard", authMiddleware, adminMiddleware, adminController.GetDashboard)
}
