package services

import (
	"testing"

	"hotelsvc/constants"
	"hotelsvc/errors"
	"hotelsvc/models"
)

func newCalendarService(t *testing.T) *CalendarService {
	t.Helper()
	return NewCalendarService(newTestDB(t), nil)
}

func containsRoom(roomIDs []uint, roomID uint) bool {
	for _, id := range roomIDs {
		if id == roomID {
			return true
		}
	}
	return false
}

func TestBlockRoomExcludesFromSearch(t *testing.T) {
	svc := newCalendarService(t)

	for _, roomID := range []uint{6, 7} {
		if _, err := svc.SeedRoomCalendar(1, roomID, day(5), day(8)); err != nil {
			t.Fatalf("seed room %d: %v", roomID, err)
		}
	}

	result, err := svc.BlockRoom(1, 7, day(5), day(7), "sửa điều hòa")
	if err != nil {
		t.Fatalf("block room: %v", err)
	}
	if result.DaysChanged != 3 || result.DaysSkipped != 0 {
		t.Fatalf("unexpected block result: %+v", result)
	}

	roomIDs, err := svc.SearchAvailability(1, day(5), day(8))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if containsRoom(roomIDs, 7) {
		t.Fatalf("expected room 7 excluded, got %v", roomIDs)
	}
	if !containsRoom(roomIDs, 6) {
		t.Fatalf("expected room 6 included, got %v", roomIDs)
	}

	// unblock trả phòng 7 về kết quả tìm kiếm
	unblocked, err := svc.UnblockRoom(1, 7, day(5), day(7))
	if err != nil {
		t.Fatalf("unblock room: %v", err)
	}
	if unblocked.DaysChanged != 3 {
		t.Fatalf("expected 3 days unblocked, got %+v", unblocked)
	}

	roomIDs, err = svc.SearchAvailability(1, day(5), day(8))
	if err != nil {
		t.Fatalf("search after unblock: %v", err)
	}
	if !containsRoom(roomIDs, 7) {
		t.Fatalf("expected room 7 restored, got %v", roomIDs)
	}
}

func TestBlockRoomSetsManualSource(t *testing.T) {
	svc := newCalendarService(t)

	if _, err := svc.BlockRoom(1, 7, day(5), day(5), "bảo trì"); err != nil {
		t.Fatalf("block room: %v", err)
	}

	var dayRow models.RoomCalendarDay
	if err := svc.db.Where("room_id = ? AND date = ?", 7, day(5)).First(&dayRow).Error; err != nil {
		t.Fatalf("load day: %v", err)
	}
	if dayRow.Status != constants.CalendarStatusBlocked {
		t.Fatalf("expected BLOCKED, got %d", dayRow.Status)
	}
	if dayRow.Source != "MANUAL: bảo trì" {
		t.Fatalf("unexpected source: %q", dayRow.Source)
	}
}

func TestBlockRoomSkipsReservedDays(t *testing.T) {
	svc := newCalendarService(t)

	if err := svc.MarkRoomsReserved(1, []uint{7}, day(6), day(7), "BOOKING"); err != nil {
		t.Fatalf("reserve day: %v", err)
	}

	result, err := svc.BlockRoom(1, 7, day(5), day(7), "sơn lại phòng")
	if err != nil {
		t.Fatalf("block room: %v", err)
	}
	if result.DaysSkipped != 1 {
		t.Fatalf("expected 1 reserved day skipped, got %+v", result)
	}

	var dayRow models.RoomCalendarDay
	if err := svc.db.Where("room_id = ? AND date = ?", 7, day(6)).First(&dayRow).Error; err != nil {
		t.Fatalf("load reserved day: %v", err)
	}
	if dayRow.Status != constants.CalendarStatusReserved {
		t.Fatalf("reserved day was overwritten: %+v", dayRow)
	}
}

func TestUnblockKeepsReservedDays(t *testing.T) {
	svc := newCalendarService(t)

	if _, err := svc.SeedRoomCalendar(1, 7, day(5), day(8)); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	if err := svc.MarkRoomsReserved(1, []uint{7}, day(6), day(7), "BOOKING"); err != nil {
		t.Fatalf("reserve day: %v", err)
	}
	if _, err := svc.BlockRoom(1, 7, day(5), day(8), "khử trùng"); err != nil {
		t.Fatalf("block room: %v", err)
	}

	if _, err := svc.UnblockRoom(1, 7, day(5), day(8)); err != nil {
		t.Fatalf("unblock room: %v", err)
	}

	// ngày RESERVED vẫn giữ nguyên nên phòng vẫn bị loại
	roomIDs, err := svc.SearchAvailability(1, day(5), day(8))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if containsRoom(roomIDs, 7) {
		t.Fatalf("expected room 7 still excluded by RESERVED day, got %v", roomIDs)
	}

	var dayRow models.RoomCalendarDay
	if err := svc.db.Where("room_id = ? AND date = ?", 7, day(6)).First(&dayRow).Error; err != nil {
		t.Fatalf("load reserved day: %v", err)
	}
	if dayRow.Status != constants.CalendarStatusReserved {
		t.Fatalf("reserved day was cleared: %+v", dayRow)
	}
}

func TestMarkRoomsReservedHalfOpenWindow(t *testing.T) {
	svc := newCalendarService(t)

	if _, err := svc.SeedRoomCalendar(1, 7, day(5), day(8)); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	if err := svc.MarkRoomsReserved(1, []uint{7}, day(5), day(7), "BOOKING"); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// ngày trả phòng không bị chiếm
	var dayRow models.RoomCalendarDay
	if err := svc.db.Where("room_id = ? AND date = ?", 7, day(7)).First(&dayRow).Error; err != nil {
		t.Fatalf("load checkout day: %v", err)
	}
	if dayRow.Status != constants.CalendarStatusAvailable {
		t.Fatalf("checkout day should stay AVAILABLE, got %d", dayRow.Status)
	}

	roomIDs, err := svc.SearchAvailability(1, day(7), day(8))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !containsRoom(roomIDs, 7) {
		t.Fatalf("expected room 7 free from checkout day, got %v", roomIDs)
	}
}

func TestSearchAvailabilityValidation(t *testing.T) {
	svc := newCalendarService(t)

	_, err := svc.SearchAvailability(1, day(3), day(1))
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	_, err = svc.SearchAvailability(1, day(-2), day(1))
	appErr = errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for past check-in, got %v", err)
	}
}

func TestBlockRoomValidatesRange(t *testing.T) {
	svc := newCalendarService(t)

	_, err := svc.BlockRoom(1, 7, day(7), day(5), "nhầm ngày")
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}
