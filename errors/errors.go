package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeAccessDenied ErrorCode = "ACCESS_DENIED"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Business errors
	ErrCodeNotFound                 ErrorCode = "NOT_FOUND"
	ErrCodeInventoryRule            ErrorCode = "INVENTORY_RULE_VIOLATION"
	ErrCodeInsufficientAvailability ErrorCode = "INSUFFICIENT_AVAILABILITY"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus map mã lỗi sang HTTP status code
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeUnauthorized, ErrCodeInvalidToken, ErrCodeMissingToken:
		return http.StatusUnauthorized
	case ErrCodeAccessDenied, ErrCodeInvalidRole:
		return http.StatusForbidden
	case ErrCodeNotFound, ErrCodeDBNotFound:
		return http.StatusNotFound
	case ErrCodeInventoryRule, ErrCodeInsufficientAvailability:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var (
	// Inventory errors
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrInventoryRule     = errors.New("inventory rule violation")

	// Hold errors
	ErrHoldNotFound           = errors.New("hold not found")
	ErrInsufficientRooms      = errors.New("insufficient availability")
	ErrHoldAlreadyReleased    = errors.New("hold already released")
	ErrHoldExpired            = errors.New("hold expired")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrCheckInBeforeToday     = errors.New("check-in date is in the past")
	ErrRoomCalendarConflicted = errors.New("room calendar conflicted")
)
