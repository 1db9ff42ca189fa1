package services

import (
	errs "errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelsvc/config"
	"hotelsvc/constants"
	"hotelsvc/errors"
	"hotelsvc/models"
	"hotelsvc/services/logger"
)

// CalendarService quản lý lịch trạng thái theo từng phòng từng ngày:
// block/unblock thủ công, ghi nhận RESERVED từ booking đã xác nhận và
// tìm phòng trống theo kiểu strict (một ngày bận là loại cả phòng).
// Lịch này độc lập với bộ đếm inventory + hold.
type CalendarService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewCalendarService(db *gorm.DB, rdb *redis.Client) *CalendarService {
	return &CalendarService{
		db:     db,
		rdb:    rdb,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// BlockResult kết quả block/unblock theo ngày
type BlockResult struct {
	DaysChanged int
	DaysSkipped int
}

// BlockRoom block một phòng trong khoảng ngày [fromDate, toDate] (inclusive).
// Ngày đang RESERVED không bị ghi đè mà được đếm vào DaysSkipped.
func (s *CalendarService) BlockRoom(hotelID, roomID uint, fromDate, toDate time.Time, reason string) (*BlockResult, error) {
	if fromDate.After(toDate) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày bắt đầu phải trước hoặc bằng ngày kết thúc", nil)
	}

	result := &BlockResult{}
	source := constants.CalendarSourceManualPrefix + reason

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
			var day models.RoomCalendarDay
			err := tx.Where("room_id = ? AND date = ?", roomID, d).First(&day).Error
			if errs.Is(err, gorm.ErrRecordNotFound) {
				day = models.RoomCalendarDay{
					HotelID: hotelID,
					RoomID:  roomID,
					Date:    d,
					Status:  constants.CalendarStatusBlocked,
					Source:  source,
				}
				if err := tx.Create(&day).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo ngày lịch", err)
				}
				result.DaysChanged++
				continue
			}
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu lịch", err)
			}

			if day.Status == constants.CalendarStatusReserved {
				result.DaysSkipped++
				continue
			}

			day.Status = constants.CalendarStatusBlocked
			day.Source = source
			if err := tx.Save(&day).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật ngày lịch", err)
			}
			result.DaysChanged++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(hotelID)
	return result, nil
}

// UnblockRoom trả các ngày BLOCKED về AVAILABLE. Ngày RESERVED giữ nguyên.
func (s *CalendarService) UnblockRoom(hotelID, roomID uint, fromDate, toDate time.Time) (*BlockResult, error) {
	if fromDate.After(toDate) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày bắt đầu phải trước hoặc bằng ngày kết thúc", nil)
	}

	result := &BlockResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var days []models.RoomCalendarDay
		err := tx.Where("room_id = ? AND date >= ? AND date <= ?", roomID, fromDate, toDate).Find(&days).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu lịch", err)
		}

		for i := range days {
			switch days[i].Status {
			case constants.CalendarStatusBlocked:
				days[i].Status = constants.CalendarStatusAvailable
				days[i].Source = constants.CalendarSourceSystem
				if err := tx.Save(&days[i]).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật ngày lịch", err)
				}
				result.DaysChanged++
			case constants.CalendarStatusReserved:
				result.DaysSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(hotelID)
	return result, nil
}

// SeedRoomCalendar tạo sẵn các ngày AVAILABLE cho một phòng mới đăng ký.
// Service quản lý khách sạn gọi khi phòng vật lý được tạo.
func (s *CalendarService) SeedRoomCalendar(hotelID, roomID uint, fromDate, toDate time.Time) (int, error) {
	if fromDate.After(toDate) {
		return 0, errors.NewAppError(errors.ErrCodeValidation, "Ngày bắt đầu phải trước hoặc bằng ngày kết thúc", nil)
	}

	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for d := fromDate; !d.After(toDate); d = d.AddDate(0, 0, 1) {
			var existing models.RoomCalendarDay
			err := tx.Where("room_id = ? AND date = ?", roomID, d).First(&existing).Error
			if errs.Is(err, gorm.ErrRecordNotFound) {
				day := models.RoomCalendarDay{
					HotelID: hotelID,
					RoomID:  roomID,
					Date:    d,
					Status:  constants.CalendarStatusAvailable,
					Source:  constants.CalendarSourceSystem,
				}
				if err := tx.Create(&day).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo ngày lịch", err)
				}
				created++
				continue
			}
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu lịch", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidateCache(hotelID)
	return created, nil
}

// MarkRoomsReserved ghi nhận các phòng của một booking đã xác nhận vào lịch.
// Khoảng ngày theo kiểu [checkIn, checkOut): ngày trả phòng vẫn trống.
// RESERVED ghi đè mọi trạng thái trước đó vì booking là nguồn có thẩm quyền.
func (s *CalendarService) MarkRoomsReserved(hotelID uint, roomIDs []uint, checkIn, checkOut time.Time, source string) error {
	if !checkOut.After(checkIn) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if len(roomIDs) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách phòng không được để trống", nil)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, roomID := range roomIDs {
			for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
				var day models.RoomCalendarDay
				err := tx.Where("room_id = ? AND date = ?", roomID, d).First(&day).Error
				if errs.Is(err, gorm.ErrRecordNotFound) {
					day = models.RoomCalendarDay{
						HotelID: hotelID,
						RoomID:  roomID,
						Date:    d,
						Status:  constants.CalendarStatusReserved,
						Source:  source,
					}
					if err := tx.Create(&day).Error; err != nil {
						return errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo ngày lịch", err)
					}
					continue
				}
				if err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu lịch", err)
				}

				day.Status = constants.CalendarStatusReserved
				day.Source = source
				if err := tx.Save(&day).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật ngày lịch", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateCache(hotelID)
	return nil
}

// SearchAvailability trả về danh sách phòng không có ngày nào khác AVAILABLE
// trong [checkIn, checkOut). Một ngày BLOCKED hoặc RESERVED loại cả phòng.
func (s *CalendarService) SearchAvailability(hotelID uint, checkIn, checkOut time.Time) ([]uint, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	today := time.Now().Truncate(24 * time.Hour)
	if checkIn.Before(today) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}

	var roomIDs []uint
	err := s.db.Model(&models.RoomCalendarDay{}).
		Where("hotel_id = ?", hotelID).
		Distinct().
		Order("room_id").
		Pluck("room_id", &roomIDs).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách phòng", err)
	}

	busyDays, err := s.getBusyDays(hotelID)
	if err != nil {
		return nil, err
	}

	// Một ngày bận trong cửa sổ là loại phòng khỏi kết quả
	excluded := make(map[uint]bool)
	for _, day := range busyDays {
		if !day.Date.Before(checkIn) && day.Date.Before(checkOut) {
			excluded[day.RoomID] = true
		}
	}

	available := make([]uint, 0, len(roomIDs))
	for _, id := range roomIDs {
		if !excluded[id] {
			available = append(available, id)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i] < available[j] })

	return available, nil
}

// getBusyDays lấy các ngày không AVAILABLE của khách sạn, cache trên Redis
func (s *CalendarService) getBusyDays(hotelID uint) ([]models.RoomCalendarDay, error) {
	cacheKey := calendarCacheKey(hotelID)

	var days []models.RoomCalendarDay
	if err := GetFromRedis(config.Ctx, s.rdb, cacheKey, &days); err == nil && len(days) > 0 {
		return days, nil
	}

	err := s.db.Where("hotel_id = ? AND status != ?", hotelID, constants.CalendarStatusAvailable).
		Find(&days).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu lịch", err)
	}

	if err := SetToRedis(config.Ctx, s.rdb, cacheKey, days, 60*time.Minute); err != nil {
		s.logger.Error("Lỗi khi lưu lịch vào Redis: %v", err)
	}

	return days, nil
}

func (s *CalendarService) invalidateCache(hotelID uint) {
	if err := DeleteFromRedis(config.Ctx, s.rdb, calendarCacheKey(hotelID)); err != nil {
		s.logger.Error("Lỗi khi xóa cache lịch: %v", err)
	}
}
