package validator

import (
	"time"

	"hotelsvc/constants"
	"hotelsvc/dto"
	"hotelsvc/errors"
)

// ParseAPIDate parse ngày theo định dạng API (2006-01-02), chuẩn hóa về UTC
func ParseAPIDate(value string, field string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			field+" không hợp lệ, vui lòng sử dụng định dạng yyyy-mm-dd", err)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ValidateHoldRequest validate request giữ phòng, trả về khoảng ngày đã parse
func ValidateHoldRequest(req *dto.CreateHoldRequest) (time.Time, time.Time, error) {
	if req.Rooms < 1 {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"Số phòng giữ phải lớn hơn 0", nil)
	}

	checkIn, err := ParseAPIDate(req.CheckInDate, "Ngày nhận phòng")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseAPIDate(req.CheckOutDate, "Ngày trả phòng")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateDateRange validate khoảng ngày inclusive (block/unblock/seed)
func ValidateDateRange(fromValue, toValue string) (time.Time, time.Time, error) {
	fromDate, err := ParseAPIDate(fromValue, "Ngày bắt đầu")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	toDate, err := ParseAPIDate(toValue, "Ngày kết thúc")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if fromDate.After(toDate) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày bắt đầu phải trước hoặc bằng ngày kết thúc", nil)
	}

	return fromDate, toDate, nil
}

// ValidateStayWindow validate cửa sổ [checkIn, checkOut) cho availability/search
func ValidateStayWindow(checkInValue, checkOutValue string) (time.Time, time.Time, error) {
	checkIn, err := ParseAPIDate(checkInValue, "Ngày nhận phòng")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseAPIDate(checkOutValue, "Ngày trả phòng")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}
