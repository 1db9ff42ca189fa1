package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hotelsvc/models"
)

// newTestDB mở một DB sqlite in-memory riêng cho mỗi test
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// một connection duy nhất để mọi query thấy cùng một DB in-memory
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.RoomInventory{}, &models.RoomHold{}, &models.RoomCalendarDay{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// day ngày UTC cách hôm nay offset ngày, chuẩn hóa về nửa đêm
func day(offset int) time.Time {
	now := time.Now().UTC().AddDate(0, 0, offset)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
