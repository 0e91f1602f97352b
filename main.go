package main

import (
	"log"
	"net/http"
	"os"

	"ems/config"
	"ems/jobs"
	"ems/routes"
	"ems/services"
	"ems/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
	if err := config.SeedAdminUser(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Redis và Cloudinary là tùy chọn: thiếu thì API vẫn chạy, chỉ mất cache/upload
	var redisCli *redis.Client
	if redisCli, err = config.ConnectRedis(); err != nil {
		log.Printf("Warning: không kết nối được Redis, chạy không cache: %v", err)
		redisCli = nil
	}

	var cld *cloudinary.Cloudinary
	if cld, err = config.ConnectCloudinary(); err != nil {
		log.Printf("Warning: không khởi tạo được Cloudinary, tắt upload ảnh: %v", err)
		cld = nil
	}

	reportService := services.NewReportService(services.ReportServiceOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetReportWarmer(services.NewReportCacheWarmer(reportService, redisCli, nil))
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, db, redisCli, cld, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
