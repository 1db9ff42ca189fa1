package dto

// AvailabilityResponse là DTO cho kết quả tính phòng trống theo hạng phòng
type AvailabilityResponse struct {
	HotelID        uint   `json:"hotelId"`
	CategoryID     uint   `json:"categoryId"`
	CheckInDate    string `json:"checkInDate"`
	CheckOutDate   string `json:"checkOutDate"`
	AvailableRooms int    `json:"availableRooms"`
}

// BlockRoomRequest là DTO cho request block phòng thủ công
type BlockRoomRequest struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// UnblockRoomRequest là DTO cho request unblock phòng
type UnblockRoomRequest struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

// ReserveRoomsRequest là DTO cho request mirror booking đã xác nhận vào lịch
type ReserveRoomsRequest struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	RoomIDs  []uint `json:"roomIds" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Source   string `json:"source"`
}

// SeedRoomRequest là DTO cho request đăng ký lịch cho phòng mới
type SeedRoomRequest struct {
	HotelID  uint   `json:"hotelId" binding:"required"`
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

// SearchAvailabilityResponse là DTO cho kết quả tìm phòng trống strict
type SearchAvailabilityResponse struct {
	HotelID          uint   `json:"hotelId"`
	AvailableRooms   int    `json:"availableRooms"`
	AvailableRoomIDs []uint `json:"availableRoomIds"`
}
