package models

import (
	"fmt"
	"time"

	"hotelsvc/constants"
)

// RoomCalendarDay trạng thái của một phòng trong một ngày.
// Tạo lazy khi đăng ký phòng hoặc khi block/unblock lần đầu.
type RoomCalendarDay struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	RoomID    uint      `json:"roomId" gorm:"index:idx_room_date,unique"`
	Date      time.Time `json:"date" gorm:"index:idx_room_date,unique"`
	Status    int       `json:"status" gorm:"default:0"`
	Source    string    `json:"source"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (d *RoomCalendarDay) ValidateStatus() error {
	if d.Status < constants.CalendarStatusAvailable || d.Status > constants.CalendarStatusReserved {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", d.Status)
	}
	return nil
}

// IsAvailable ngày này phòng còn trống không
func (d *RoomCalendarDay) IsAvailable() bool {
	return d.Status == constants.CalendarStatusAvailable
}
