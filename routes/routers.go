package routes

import (
	"ems/controllers"
	middlewares "ems/middleware"
	"ems/repository"
	"ems/services"
	"ems/services/logger"
	"ems/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes dựng repositories, services, controllers và gắn toàn bộ route
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)

	employeeService := services.NewEmployeeService(services.EmployeeServiceOptions{
		DB:        db,
		Employees: employeeRepo,
		Logger:    appLogger,
	})
	attendanceService := services.NewAttendanceService(services.AttendanceServiceOptions{
		DB:          db,
		Attendances: attendanceRepo,
		Employees:   employeeRepo,
		Notifier:    notification.NewMelodyService(m),
		Logger:      appLogger,
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		DB:     db,
		Logger: appLogger,
	})
	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     db,
		Users:  userRepo,
		Logger: appLogger,
	})
	searchService := services.NewSearchService(services.SearchServiceOptions{
		DB:        db,
		Employees: employeeRepo,
		Logger:    appLogger,
	})

	employeeController := controllers.NewEmployeeController(employeeService, searchService, redisCli, cld)
	attendanceController := controllers.NewAttendanceController(attendanceService, redisCli)
	reportController := controllers.NewReportController(reportService, redisCli)
	authController := controllers.NewAuthController(authService)

	api := router.Group("/api")

	api.GET("/employees", employeeController.GetEmployees)
	api.GET("/employees/search", employeeController.SearchEmployees)
	api.GET("/employees/:id", employeeController.GetEmployeeByID)
	api.POST("/employees", employeeController.CreateEmployee)
	api.PUT("/employees/:id", employeeController.UpdateEmployee)
	api.DELETE("/employees/clear-all", employeeController.ClearAllEmployees)
	api.DELETE("/employees/:id", employeeController.DeleteEmployee)
	api.POST("/employees/:id/avatar", employeeController.UploadAvatar)

	api.GET("/attendance", attendanceController.GetAttendance)
	api.GET("/attendance/employee/:employeeId", attendanceController.GetEmployeeAttendance)
	api.POST("/attendance", attendanceController.CreateAttendance)
	api.PUT("/attendance/:id", attendanceController.UpdateAttendance)

	api.POST("/auth/login", authController.Login)
	api.GET("/auth/me", middlewares.AuthMiddleware(), authController.GetProfile)

	api.GET("/reports/employee-directory", reportController.GetEmployeeDirectory)
	api.GET("/reports/departments", reportController.GetDepartmentReport)
	api.GET("/reports/attendance", reportController.GetAttendanceReport)
	api.GET("/reports/salary", reportController.GetSalaryReport)
}
