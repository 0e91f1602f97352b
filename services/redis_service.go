package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Các cache key dùng chung giữa controllers và cron job
const (
	CacheKeyActiveEmployees    = "employees:active"
	CacheKeyReportDirectory    = "reports:directory"
	CacheKeyReportDepartments  = "reports:departments"
	CacheKeyReportAttendance   = "reports:attendance"
	CacheKeyReportSalary       = "reports:salary"
)

// EmployeeCacheTTL thời gian sống của cache danh sách và báo cáo
const EmployeeCacheTTL = 10 * time.Minute

// GetFromRedis lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidateEmployeeCaches xóa cache danh sách và toàn bộ báo cáo.
// Gọi sau mỗi thao tác ghi lên nhân viên hoặc chấm công.
func InvalidateEmployeeCaches(ctx context.Context, rdb *redis.Client) error {
	return DeleteFromRedis(ctx, rdb,
		CacheKeyActiveEmployees,
		CacheKeyReportDirectory,
		CacheKeyReportDepartments,
		CacheKeyReportAttendance,
		CacheKeyReportSalary,
	)
}
