package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"hotelsvc/constants"
)

// HoldExpirer định nghĩa interface cho việc thu hồi hold quá hạn
type HoldExpirer interface {
	ExpireHolds() (int, error)
}

var holdExpirer HoldExpirer

// SetHoldExpirer thiết lập implementation cho HoldExpirer
func SetHoldExpirer(expirer HoldExpirer) {
	holdExpirer = expirer
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Quét hold quá hạn mỗi phút. Best-effort: lỗi chỉ log,
	// tick sau sẽ quét lại phần còn sót.
	_, err := c.AddFunc(constants.HoldSweepSchedule, func() {
		if holdExpirer == nil {
			log.Printf("Lỗi: HoldExpirer chưa được thiết lập")
			return
		}
		reclaimed, err := holdExpirer.ExpireHolds()
		if err != nil {
			log.Printf("Lỗi khi quét hold quá hạn: %v", err)
			return
		}
		if reclaimed > 0 {
			log.Printf("Đã thu hồi %d hold quá hạn", reclaimed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
