package services

import (
	errs "errors"
	"time"

	"gorm.io/gorm"

	"hotelsvc/errors"
	"hotelsvc/models"
)

// AvailabilityService tính số phòng trống của một hạng phòng theo công thức
// available = totalRooms - outOfService - tổng phòng của hold đang hiệu lực
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// GetAvailability số phòng trống trong [checkIn, checkOut), chỉ đọc, chặn dưới 0
func (s *AvailabilityService) GetAvailability(hotelID, categoryID uint, checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	var inventory models.RoomInventory
	err := s.db.Where("hotel_id = ? AND category_id = ?", hotelID, categoryID).First(&inventory).Error
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return 0, errors.NewAppError(errors.ErrCodeNotFound, "Chưa cấu hình inventory cho hạng phòng này", err)
	}
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu inventory", err)
	}

	held, err := countActiveHoldRooms(s.db, hotelID, categoryID, checkIn, checkOut, time.Now())
	if err != nil {
		return 0, err
	}

	available := inventory.AvailableRooms() - held
	if available < 0 {
		available = 0
	}
	return available, nil
}
