package jobs

import (
	"github.com/robfig/cron/v3"

	"hotelcart/services/logger"
)

// SweepSpec là lịch dọn phiên hết hạn
const SweepSpec = "@every 1m"

// SessionSweeper định nghĩa interface cho việc dọn các phiên đã hết hạn
type SessionSweeper interface {
	Sweep() int
}

// InitCronJobs khởi tạo các cron jobs. sweeper nil (phiên lưu trên Redis tự hết hạn) thì không đăng ký gì.
func InitCronJobs(c *cron.Cron, sweeper SessionSweeper, log logger.Logger) error {
	if sweeper != nil {
		if _, err := c.AddFunc(SweepSpec, sweepJob(sweeper, log)); err != nil {
			return err
		}
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

func sweepJob(sweeper SessionSweeper, log logger.Logger) func() {
	return func() {
		if n := sweeper.Sweep(); n > 0 {
			log.Info("Đã dọn %d phiên giỏ hàng hết hạn", n)
		}
	}
}
