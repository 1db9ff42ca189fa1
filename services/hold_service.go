package services

import (
	errs "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotelsvc/constants"
	"hotelsvc/errors"
	"hotelsvc/models"
	"hotelsvc/services/logger"
)

// HoldService quản lý vòng đời hold giữ phòng: tạo, release và quét hết hạn.
// Hold là bản ghi append-only, release/expire chỉ bật cờ Released.
type HoldService struct {
	db     *gorm.DB
	locks  *CategoryLocks
	logger logger.Logger
}

func NewHoldService(db *gorm.DB, locks *CategoryLocks) *HoldService {
	return &HoldService{
		db:     db,
		locks:  locks,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// countActiveHoldRooms tổng số phòng của các hold còn hiệu lực giao với [checkIn, checkOut)
func countActiveHoldRooms(db *gorm.DB, hotelID, categoryID uint, checkIn, checkOut, now time.Time) (int, error) {
	var total int64
	err := db.Model(&models.RoomHold{}).
		Where("hotel_id = ? AND category_id = ? AND released = ? AND expires_at > ?", hotelID, categoryID, false, now).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Select("COALESCE(SUM(rooms), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể đếm hold đang hiệu lực", err)
	}
	return int(total), nil
}

// CreateHold tạo hold mới nếu hạng phòng còn đủ chỗ trong khoảng ngày yêu cầu.
// Toàn bộ đoạn đếm-rồi-ghi chạy dưới mutex của (hotelId, categoryId).
func (s *HoldService) CreateHold(hotelID, categoryID uint, checkIn, checkOut time.Time, rooms int) (*models.RoomHold, error) {
	if rooms < 1 {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Số phòng giữ phải lớn hơn 0", nil)
	}
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	mu := s.locks.ForCategory(hotelID, categoryID)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	var hold models.RoomHold
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inventory models.RoomInventory
		err := tx.Where("hotel_id = ? AND category_id = ?", hotelID, categoryID).First(&inventory).Error
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Chưa cấu hình inventory cho hạng phòng này", err)
		}
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu inventory", err)
		}

		held, err := countActiveHoldRooms(tx, hotelID, categoryID, checkIn, checkOut, now)
		if err != nil {
			return err
		}

		available := inventory.AvailableRooms() - held
		if available < rooms {
			return errors.NewAppError(errors.ErrCodeInsufficientAvailability,
				"Không đủ phòng trống trong khoảng ngày yêu cầu", nil)
		}

		hold = models.RoomHold{
			HoldID:       uuid.NewString(),
			HotelID:      hotelID,
			CategoryID:   categoryID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Rooms:        rooms,
			ExpiresAt:    now.Add(constants.HoldTTL),
			Released:     false,
		}
		return tx.Create(&hold).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo hold %s: hotel=%d category=%d rooms=%d", hold.HoldID, hotelID, categoryID, rooms)
	return &hold, nil
}

// ReleaseHold release một hold theo holdId. Gọi lại trên hold đã release
// là no-op thành công để phía booking retry an toàn.
func (s *HoldService) ReleaseHold(holdID string) (*models.RoomHold, error) {
	var hold models.RoomHold
	err := s.db.Where("hold_id = ?", holdID).First(&hold).Error
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy hold", err)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu hold", err)
	}

	if hold.Released {
		return &hold, nil
	}

	hold.Released = true
	if err := s.db.Save(&hold).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể release hold", err)
	}

	s.logger.Info("Đã release hold %s", holdID)
	return &hold, nil
}

// ExpireHolds quét các hold quá hạn và release từng cái một.
// Mỗi hold được commit riêng nên lỗi giữa chừng không mất các hold đã xử lý,
// lần quét sau sẽ dọn nốt phần còn lại.
func (s *HoldService) ExpireHolds() (int, error) {
	now := time.Now()

	var expired []models.RoomHold
	err := s.db.Where("released = ? AND expires_at <= ?", false, now).Find(&expired).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách hold quá hạn", err)
	}

	reclaimed := 0
	for _, hold := range expired {
		err := s.db.Model(&models.RoomHold{}).
			Where("id = ? AND released = ?", hold.ID, false).
			Update("released", true).Error
		if err != nil {
			s.logger.Error("Lỗi khi release hold quá hạn %s: %v", hold.HoldID, err)
			continue
		}
		reclaimed++
	}

	if reclaimed > 0 {
		s.logger.Info("Đã thu hồi %d hold quá hạn", reclaimed)
	}
	return reclaimed, nil
}
