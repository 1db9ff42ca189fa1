package services

import (
	errs "errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotelsvc/config"
	"hotelsvc/errors"
	"hotelsvc/models"
	"hotelsvc/services/logger"
)

// InventoryService quản lý bộ đếm phòng theo khách sạn và hạng phòng
type InventoryService struct {
	db     *gorm.DB
	rdb    *redis.Client
	locks  *CategoryLocks
	logger logger.Logger
}

func NewInventoryService(db *gorm.DB, rdb *redis.Client, locks *CategoryLocks) *InventoryService {
	return &InventoryService{
		db:     db,
		rdb:    rdb,
		locks:  locks,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// UpsertInventory tạo mới hoặc cập nhật tổng số phòng của một hạng phòng
func (s *InventoryService) UpsertInventory(hotelID, categoryID uint, totalRooms int) (*models.RoomInventory, error) {
	if totalRooms < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInventoryRule, "Tổng số phòng không được âm", nil)
	}

	mu := s.locks.ForCategory(hotelID, categoryID)
	mu.Lock()
	defer mu.Unlock()

	var inventory models.RoomInventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("hotel_id = ? AND category_id = ?", hotelID, categoryID).First(&inventory).Error
		if errs.Is(err, gorm.ErrRecordNotFound) {
			inventory = models.RoomInventory{
				HotelID:      hotelID,
				CategoryID:   categoryID,
				TotalRooms:   totalRooms,
				OutOfService: 0,
			}
			return tx.Create(&inventory).Error
		}
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu inventory", err)
		}

		if totalRooms < inventory.OutOfService {
			return errors.NewAppError(errors.ErrCodeInventoryRule,
				"Tổng số phòng không được nhỏ hơn số phòng đang bảo trì", nil)
		}

		inventory.TotalRooms = totalRooms
		return tx.Save(&inventory).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(hotelID)
	return &inventory, nil
}

// IncrementOutOfService tăng số phòng bảo trì lên 1
func (s *InventoryService) IncrementOutOfService(hotelID, categoryID uint) (*models.RoomInventory, error) {
	return s.adjustOutOfService(hotelID, categoryID, 1)
}

// DecrementOutOfService giảm số phòng bảo trì đi 1
func (s *InventoryService) DecrementOutOfService(hotelID, categoryID uint) (*models.RoomInventory, error) {
	return s.adjustOutOfService(hotelID, categoryID, -1)
}

func (s *InventoryService) adjustOutOfService(hotelID, categoryID uint, delta int) (*models.RoomInventory, error) {
	mu := s.locks.ForCategory(hotelID, categoryID)
	mu.Lock()
	defer mu.Unlock()

	var inventory models.RoomInventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("hotel_id = ? AND category_id = ?", hotelID, categoryID).First(&inventory).Error
		if errs.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeNotFound, "Chưa cấu hình inventory cho hạng phòng này", err)
		}
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu inventory", err)
		}

		next := inventory.OutOfService + delta
		if next < 0 || next > inventory.TotalRooms {
			return errors.NewAppError(errors.ErrCodeInventoryRule,
				"Số phòng bảo trì phải nằm trong khoảng từ 0 đến tổng số phòng", nil)
		}

		inventory.OutOfService = next
		return tx.Save(&inventory).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache(hotelID)
	return &inventory, nil
}

// GetInventory lấy toàn bộ bộ đếm của một khách sạn, chỉ đọc
func (s *InventoryService) GetInventory(hotelID uint) ([]models.RoomInventory, error) {
	cacheKey := inventoryCacheKey(hotelID)

	var records []models.RoomInventory
	if err := GetFromRedis(config.Ctx, s.rdb, cacheKey, &records); err == nil && len(records) > 0 {
		return records, nil
	}

	if err := s.db.Where("hotel_id = ?", hotelID).Order("category_id").Find(&records).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy dữ liệu inventory", err)
	}

	if err := SetToRedis(config.Ctx, s.rdb, cacheKey, records, 10*time.Minute); err != nil {
		s.logger.Error("Lỗi khi lưu inventory vào Redis: %v", err)
	}

	return records, nil
}

func (s *InventoryService) invalidateCache(hotelID uint) {
	if err := DeleteFromRedis(config.Ctx, s.rdb, inventoryCacheKey(hotelID)); err != nil {
		s.logger.Error("Lỗi khi xóa cache inventory: %v", err)
	}
}
