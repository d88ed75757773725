package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hotelcart/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// ErrorBody là data đi kèm response lỗi nghiệp vụ
type ErrorBody struct {
	ErrorCode apperrors.ErrorCode `json:"errorCode"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Accepted trả về 202 khi yêu cầu đã nhận và đang xử lý nền
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, Response{
		Code: 1,
		Mess: "Đang xử lý",
		Data: data,
	})
}

// AppError trả về response theo mã lỗi của AppError
func AppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code == apperrors.ErrCodeInternal {
		ServerError(c)
		return
	}
	c.JSON(StatusOf(appErr.Code), Response{
		Code: 0,
		Mess: appErr.Message,
		Data: ErrorBody{ErrorCode: appErr.Code},
	})
}

// StatusOf ánh xạ mã lỗi sang HTTP status
func StatusOf(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeSessionNotFound, apperrors.ErrCodeRoomNotSellable:
		return http.StatusNotFound
	case apperrors.ErrCodeCatalogLoading, apperrors.ErrCodeSessionClosed:
		return http.StatusConflict
	case apperrors.ErrCodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeInternal:
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

