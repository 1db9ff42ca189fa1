package errors

import (
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeValidation:               http.StatusBadRequest,
		ErrCodeInvalidFormat:            http.StatusBadRequest,
		ErrCodeAccessDenied:             http.StatusForbidden,
		ErrCodeNotFound:                 http.StatusNotFound,
		ErrCodeInventoryRule:            http.StatusConflict,
		ErrCodeInsufficientAvailability: http.StatusConflict,
		ErrCodeDBError:                  http.StatusInternalServerError,
	}

	for code, expected := range cases {
		if got := HTTPStatus(code); got != expected {
			t.Errorf("HTTPStatus(%s) = %d, expected %d", code, got, expected)
		}
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NewAppError(ErrCodeNotFound, "Không tìm thấy hold", nil)
	if got := GetAppError(appErr); got == nil || got.Code != ErrCodeNotFound {
		t.Fatalf("expected AppError back, got %v", got)
	}
	if GetAppError(http.ErrServerClosed) != nil {
		t.Fatalf("expected nil for non-AppError")
	}
}
