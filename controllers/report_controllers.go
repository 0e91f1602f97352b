package controllers

import (
	"context"
	"log"

	"ems/config"
	"ems/response"
	"ems/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ReportController struct {
	Service *services.ReportService
	Redis   *redis.Client
}

func NewReportController(service *services.ReportService, redisCli *redis.Client) ReportController {
	return ReportController{
		Service: service,
		Redis:   redisCli,
	}
}

// GetEmployeeDirectory báo cáo danh bạ nhân viên
func (rc ReportController) GetEmployeeDirectory(c *gin.Context) {
	serveReport(c, rc.Redis, services.CacheKeyReportDirectory, func(ctx context.Context) (interface{}, error) {
		return rc.Service.EmployeeDirectory(ctx)
	})
}

// GetDepartmentReport báo cáo số lượng và lương trung bình theo phòng ban
func (rc ReportController) GetDepartmentReport(c *gin.Context) {
	serveReport(c, rc.Redis, services.CacheKeyReportDepartments, func(ctx context.Context) (interface{}, error) {
		return rc.Service.DepartmentSummary(ctx)
	})
}

// GetAttendanceReport báo cáo chấm công theo từng nhân viên
func (rc ReportController) GetAttendanceReport(c *gin.Context) {
	serveReport(c, rc.Redis, services.CacheKeyReportAttendance, func(ctx context.Context) (interface{}, error) {
		return rc.Service.AttendanceSummary(ctx)
	})
}

// GetSalaryReport báo cáo lương, xếp theo lương giảm dần
func (rc ReportController) GetSalaryReport(c *gin.Context) {
	serveReport(c, rc.Redis, services.CacheKeyReportSalary, func(ctx context.Context) (interface{}, error) {
		return rc.Service.SalaryListing(ctx)
	})
}

// serveReport áp dụng cache-aside cho một báo cáo: đọc Redis trước,
// tính lại từ DB khi cache trống rồi ghi ngược vào Redis.
func serveReport(c *gin.Context, rdb *redis.Client, cacheKey string, compute func(ctx context.Context) (interface{}, error)) {
	if rdb != nil {
		var cached []map[string]interface{}
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	data, err := compute(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, data, services.EmployeeCacheTTL); err != nil {
			log.Printf("Lỗi khi lưu báo cáo %s vào Redis: %v", cacheKey, err)
		}
	}

	response.Success(c, data)
}
