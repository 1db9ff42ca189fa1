package models

import "time"

// Hold status (trạng thái suy ra, không lưu cột riêng)
const (
	HoldStateActive   = "ACTIVE"
	HoldStateReleased = "RELEASED"
)

// RoomHold giữ chỗ tạm thời N phòng của một hạng phòng trong khoảng ngày.
// Bản ghi chỉ append, không bao giờ xóa vật lý để phục vụ audit.
type RoomHold struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	HoldID       string    `json:"holdId" gorm:"uniqueIndex;size:36"`
	HotelID      uint      `json:"hotelId" gorm:"index:idx_hold_hotel_category"`
	CategoryID   uint      `json:"categoryId" gorm:"index:idx_hold_hotel_category"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`
	Rooms        int       `json:"rooms"`
	ExpiresAt    time.Time `json:"expiresAt" gorm:"index"`
	Released     bool      `json:"released" gorm:"default:false;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive hold còn hiệu lực tại thời điểm now
func (h *RoomHold) IsActive(now time.Time) bool {
	return !h.Released && h.ExpiresAt.After(now)
}

// Overlaps hold có giao với khoảng [from, to) không
func (h *RoomHold) Overlaps(from, to time.Time) bool {
	return h.CheckInDate.Before(to) && h.CheckOutDate.After(from)
}

// State trạng thái hiện tại của hold
func (h *RoomHold) State(now time.Time) string {
	if h.IsActive(now) {
		return HoldStateActive
	}
	return HoldStateReleased
}
