package services

import (
	"sync"
	"testing"
	"time"

	"hotelsvc/errors"
	"hotelsvc/models"
)

type holdFixture struct {
	holds        *HoldService
	inventory    *InventoryService
	availability *AvailabilityService
}

// newHoldFixture dựng inventory totalRooms=10, outOfService=2 (available=8)
func newHoldFixture(t *testing.T) *holdFixture {
	t.Helper()

	db := newTestDB(t)
	locks := NewCategoryLocks()
	f := &holdFixture{
		holds:        NewHoldService(db, locks),
		inventory:    NewInventoryService(db, nil, locks),
		availability: NewAvailabilityService(db),
	}

	if _, err := f.inventory.UpsertInventory(1, 10, 10); err != nil {
		t.Fatalf("create inventory: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := f.inventory.IncrementOutOfService(1, 10); err != nil {
			t.Fatalf("increment out of service: %v", err)
		}
	}
	return f
}

func TestCreateHoldReducesAvailability(t *testing.T) {
	f := newHoldFixture(t)

	hold, err := f.holds.CreateHold(1, 10, day(1), day(3), 5)
	if err != nil {
		t.Fatalf("create hold: %v", err)
	}
	if hold.HoldID == "" {
		t.Fatalf("expected opaque holdId")
	}
	if !hold.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", hold.ExpiresAt)
	}

	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 3 {
		t.Fatalf("expected availability 3, got %d", available)
	}
}

func TestReleaseHoldRestoresAvailability(t *testing.T) {
	f := newHoldFixture(t)

	hold, err := f.holds.CreateHold(1, 10, day(1), day(3), 5)
	if err != nil {
		t.Fatalf("create hold: %v", err)
	}

	if _, err := f.holds.ReleaseHold(hold.HoldID); err != nil {
		t.Fatalf("release hold: %v", err)
	}

	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 8 {
		t.Fatalf("expected availability restored to 8, got %d", available)
	}

	// release lần hai là no-op thành công
	released, err := f.holds.ReleaseHold(hold.HoldID)
	if err != nil {
		t.Fatalf("second release: %v", err)
	}
	if !released.Released {
		t.Fatalf("expected hold to stay released")
	}
}

func TestReleaseHoldNotFound(t *testing.T) {
	f := newHoldFixture(t)

	_, err := f.holds.ReleaseHold("khong-ton-tai")
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateHoldBoundary(t *testing.T) {
	f := newHoldFixture(t)

	// giữ đúng số phòng còn lại thì thành công một lần
	if _, err := f.holds.CreateHold(1, 10, day(1), day(3), 8); err != nil {
		t.Fatalf("hold for exact remaining: %v", err)
	}

	// thêm 1 phòng nữa trên cửa sổ giao nhau phải fail
	_, err := f.holds.CreateHold(1, 10, day(2), day(4), 1)
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInsufficientAvailability {
		t.Fatalf("expected INSUFFICIENT_AVAILABILITY, got %v", err)
	}

	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 0 {
		t.Fatalf("expected availability 0, got %d", available)
	}
}

func TestCreateHoldIgnoresDisjointWindows(t *testing.T) {
	f := newHoldFixture(t)

	if _, err := f.holds.CreateHold(1, 10, day(1), day(3), 8); err != nil {
		t.Fatalf("first hold: %v", err)
	}

	// [checkIn, checkOut) nửa mở: cửa sổ bắt đầu đúng ngày trả phòng không giao
	if _, err := f.holds.CreateHold(1, 10, day(3), day(5), 8); err != nil {
		t.Fatalf("disjoint hold: %v", err)
	}
}

func TestCreateHoldUnknownInventory(t *testing.T) {
	f := newHoldFixture(t)

	_, err := f.holds.CreateHold(9, 9, day(1), day(3), 1)
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateHoldValidation(t *testing.T) {
	f := newHoldFixture(t)

	if _, err := f.holds.CreateHold(1, 10, day(1), day(3), 0); err == nil {
		t.Fatalf("expected error for rooms=0")
	}
	if _, err := f.holds.CreateHold(1, 10, day(3), day(1), 1); err == nil {
		t.Fatalf("expected error for inverted window")
	}
	if _, err := f.holds.CreateHold(1, 10, day(1), day(1), 1); err == nil {
		t.Fatalf("expected error for empty window")
	}
}

func TestExpireHoldsReclaims(t *testing.T) {
	f := newHoldFixture(t)

	hold, err := f.holds.CreateHold(1, 10, day(1), day(3), 5)
	if err != nil {
		t.Fatalf("create hold: %v", err)
	}

	// lùi hạn về quá khứ để mô phỏng hold bị bỏ rơi
	err = f.holds.db.Model(&models.RoomHold{}).
		Where("hold_id = ?", hold.HoldID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	if err != nil {
		t.Fatalf("backdate hold: %v", err)
	}

	reclaimed, err := f.holds.ExpireHolds()
	if err != nil {
		t.Fatalf("expire holds: %v", err)
	}
	if reclaimed != 1 {
		t.Fatalf("expected 1 reclaimed hold, got %d", reclaimed)
	}

	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 8 {
		t.Fatalf("expected availability restored to 8, got %d", available)
	}

	// quét lại không thu hồi thêm gì
	reclaimed, err = f.holds.ExpireHolds()
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if reclaimed != 0 {
		t.Fatalf("expected idempotent sweep, reclaimed %d", reclaimed)
	}
}

func TestExpiredHoldNotCountedBeforeSweep(t *testing.T) {
	f := newHoldFixture(t)

	hold, err := f.holds.CreateHold(1, 10, day(1), day(3), 5)
	if err != nil {
		t.Fatalf("create hold: %v", err)
	}

	err = f.holds.db.Model(&models.RoomHold{}).
		Where("hold_id = ?", hold.HoldID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	if err != nil {
		t.Fatalf("backdate hold: %v", err)
	}

	// hold quá hạn không còn tính vào availability kể cả trước khi quét
	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 8 {
		t.Fatalf("expected expired hold ignored, got availability %d", available)
	}
}

func TestConcurrentCreateHoldNoOverbooking(t *testing.T) {
	f := newHoldFixture(t)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.holds.CreateHold(1, 10, day(1), day(3), 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != errors.ErrCodeInsufficientAvailability {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 8 {
		t.Fatalf("expected exactly 8 holds to succeed, got %d", succeeded)
	}

	available, err := f.availability.GetAvailability(1, 10, day(1), day(3))
	if err != nil {
		t.Fatalf("get availability: %v", err)
	}
	if available != 0 {
		t.Fatalf("expected availability 0 after saturation, got %d", available)
	}
}
