package dto

// UpsertInventoryRequest là DTO cho request upsert inventory
type UpsertInventoryRequest struct {
	CategoryID uint `json:"categoryId" binding:"required"`
	TotalRooms *int `json:"totalRooms" binding:"required"`
}

// InventoryResponse là DTO cho một bản ghi inventory
type InventoryResponse struct {
	HotelID        uint `json:"hotelId"`
	CategoryID     uint `json:"categoryId"`
	TotalRooms     int  `json:"totalRooms"`
	OutOfService   int  `json:"outOfService"`
	AvailableRooms int  `json:"availableRooms"`
}
