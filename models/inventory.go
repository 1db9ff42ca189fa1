package models

import (
	"fmt"
	"time"
)

// RoomInventory lưu bộ đếm phòng theo khách sạn và hạng phòng
type RoomInventory struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	HotelID      uint      `json:"hotelId" gorm:"index:idx_hotel_category,unique"`
	CategoryID   uint      `json:"categoryId" gorm:"index:idx_hotel_category,unique"`
	TotalRooms   int       `json:"totalRooms"`
	OutOfService int       `json:"outOfService" gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AvailableRooms số phòng còn khai thác được
func (i *RoomInventory) AvailableRooms() int {
	return i.TotalRooms - i.OutOfService
}

func (i *RoomInventory) ValidateCounters() error {
	if i.TotalRooms < 0 {
		return fmt.Errorf("invalid totalRooms: %d", i.TotalRooms)
	}
	if i.OutOfService < 0 || i.OutOfService > i.TotalRooms {
		return fmt.Errorf("invalid outOfService: %d, must be between 0 and %d", i.OutOfService, i.TotalRooms)
	}
	return nil
}
