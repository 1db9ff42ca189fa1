package services

import (
	"fmt"
	"sync"
)

// CategoryLocks cấp phát mutex theo cặp (hotelId, categoryId).
// Đoạn đếm-rồi-ghi của createHold và các hook tăng/giảm outOfService
// phải chạy trong critical section này, nếu không hai request song song
// cùng thấy đủ phòng và cùng ghi sẽ vượt quá sức chứa.
type CategoryLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCategoryLocks() *CategoryLocks {
	return &CategoryLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// ForCategory trả về mutex của cặp (hotelId, categoryId), tạo mới nếu chưa có
func (l *CategoryLocks) ForCategory(hotelID, categoryID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := fmt.Sprintf("%d:%d", hotelID, categoryID)
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
