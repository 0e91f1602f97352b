package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ReportWarmer định nghĩa interface cho việc làm nóng cache báo cáo
type ReportWarmer interface {
	WarmReportCaches(ctx context.Context) error
}

var reportWarmer ReportWarmer

// SetReportWarmer thiết lập implementation cho ReportWarmer
func SetReportWarmer(warmer ReportWarmer) {
	reportWarmer = warmer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang làm nóng cache báo cáo lúc: %v", now)
		if reportWarmer == nil {
			log.Printf("Lỗi: ReportWarmer chưa được thiết lập")
			return
		}
		if err := reportWarmer.WarmReportCaches(context.Background()); err != nil {
			log.Printf("Lỗi khi làm nóng cache báo cáo: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
