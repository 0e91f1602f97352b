package services

import (
	"context"

	"ems/services/logger"

	"github.com/redis/go-redis/v9"
)

// ReportCacheWarmer tính trước các báo cáo và đẩy vào Redis.
// Dùng bởi cron job để dashboard buổi sáng không phải chờ DB.
type ReportCacheWarmer struct {
	reports *ReportService
	rdb     *redis.Client
	logger  logger.Logger
}

func NewReportCacheWarmer(reports *ReportService, rdb *redis.Client, log logger.Logger) *ReportCacheWarmer {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportCacheWarmer{
		reports: reports,
		rdb:     rdb,
		logger:  log,
	}
}

func (w *ReportCacheWarmer) WarmReportCaches(ctx context.Context) error {
	if w.rdb == nil {
		return nil
	}

	directory, err := w.reports.EmployeeDirectory(ctx)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, CacheKeyReportDirectory, directory, EmployeeCacheTTL); err != nil {
		return err
	}

	departments, err := w.reports.DepartmentSummary(ctx)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, CacheKeyReportDepartments, departments, EmployeeCacheTTL); err != nil {
		return err
	}

	attendance, err := w.reports.AttendanceSummary(ctx)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, CacheKeyReportAttendance, attendance, EmployeeCacheTTL); err != nil {
		return err
	}

	salary, err := w.reports.SalaryListing(ctx)
	if err != nil {
		return err
	}
	if err := SetToRedis(ctx, w.rdb, CacheKeyReportSalary, salary, EmployeeCacheTTL); err != nil {
		return err
	}

	w.logger.Info("Đã làm nóng cache báo cáo")
	return nil
}
