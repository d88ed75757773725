package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Cart errors
	ErrCodeInvalidTierSelection ErrorCode = "INVALID_TIER_SELECTION"
	ErrCodeInventoryExceeded    ErrorCode = "INVENTORY_EXCEEDED"
	ErrCodeInvalidQuantity      ErrorCode = "INVALID_QUANTITY"
	ErrCodeEmptyCart            ErrorCode = "EMPTY_CART"
	ErrCodeRoomNotSellable      ErrorCode = "ROOM_NOT_SELLABLE"

	// Catalog errors
	ErrCodeCatalogUnavailable ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeCatalogLoading     ErrorCode = "CATALOG_LOADING"

	// Session errors
	ErrCodeInvalidStayRange ErrorCode = "INVALID_STAY_RANGE"
	ErrCodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionClosed    ErrorCode = "SESSION_CLOSED"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
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

// Is cho phép errors.Is so khớp hai AppError theo mã lỗi
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
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
	return GetAppError(err) != nil
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf trả về mã lỗi, hoặc INTERNAL_ERROR nếu err không phải AppError
func CodeOf(err error) ErrorCode {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeInternal
}

var (
	ErrInvalidTierSelection = NewAppError(ErrCodeInvalidTierSelection, "Hạng giá này không áp dụng cho phòng đã chọn", nil)
	ErrInventoryExceeded    = NewAppError(ErrCodeInventoryExceeded, "Số lượng vượt quá số phòng còn trống", nil)
	ErrInvalidQuantity      = NewAppError(ErrCodeInvalidQuantity, "Số lượng phòng không hợp lệ", nil)
	ErrEmptyCart            = NewAppError(ErrCodeEmptyCart, "Vui lòng chọn ít nhất một phòng", nil)
	ErrRoomNotSellable      = NewAppError(ErrCodeRoomNotSellable, "Phòng không còn mở bán", nil)

	ErrCatalogUnavailable = NewAppError(ErrCodeCatalogUnavailable, "Không có phòng trống", nil)
	ErrCatalogLoading     = NewAppError(ErrCodeCatalogLoading, "Đang tải danh sách phòng", nil)

	ErrInvalidStayRange = NewAppError(ErrCodeInvalidStayRange, "Vui lòng chọn ngày nhận và trả phòng", nil)
	ErrSessionNotFound  = NewAppError(ErrCodeSessionNotFound, "Không tìm thấy phiên đặt phòng", nil)
	ErrSessionClosed    = NewAppError(ErrCodeSessionClosed, "Phiên đặt phòng đã chuyển sang thanh toán", nil)
)

// Wrap gắn lỗi gốc vào một AppError có sẵn, giữ nguyên mã và thông điệp
func Wrap(base *AppError, err error) *AppError {
	return NewAppError(base.Code, base.Message, err)
}
