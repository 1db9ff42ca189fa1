package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelsvc/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
	})
}

// Created trả về response 201 cho resource mới tạo
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Thành công",
		Data:    data,
	})
}

// NoContent trả về response 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SuccessWithMessage trả về response thành công kèm message riêng
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error trả về response lỗi theo AppError
func Error(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(errors.HTTPStatus(appErr.Code), Response{
			Success: false,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
		return
	}
	ServerError(c)
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: "Lỗi server",
		Error:   string(errors.ErrCodeDBError),
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: "Chưa xác thực",
		Error:   string(errors.ErrCodeUnauthorized),
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Message: "Không có quyền truy cập",
		Error:   string(errors.ErrCodeAccessDenied),
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: "Không tìm thấy",
		Error:   string(errors.ErrCodeNotFound),
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Error:   string(errors.ErrCodeValidation),
	})
}
