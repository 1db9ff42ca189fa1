package dto

import "time"

// CreateHoldRequest là DTO cho request giữ phòng của booking service
type CreateHoldRequest struct {
	HotelID      uint   `json:"hotelId" binding:"required"`
	CategoryID   uint   `json:"categoryId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Rooms        int    `json:"rooms" binding:"required"`
}

// HoldResponse là DTO trả về sau khi tạo hold
type HoldResponse struct {
	HoldID    string    `json:"holdId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
