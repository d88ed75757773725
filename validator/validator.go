package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "hotelcart/errors"
	"hotelcart/services/booking"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Báo lỗi theo tên field JSON/form mà client gửi lên
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// ValidateStruct kiểm tra request theo tag `validate`, trả về AppError cho lỗi đầu tiên
func ValidateStruct(req interface{}) error {
	err := instance().Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); !ok || len(fieldErrs) == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}

	fe := fieldErrs[0]
	if fe.Tag() == "required" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, fmt.Sprintf("%s không được để trống", fe.Field()), err)
	}
	return apperrors.NewAppError(apperrors.ErrCodeValidation, fieldMessage(fe), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s phải lớn hơn %s", fe.Field(), gtParam(fe))
	case "max":
		return fmt.Sprintf("%s không được dài quá %s ký tự", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s không hợp lệ", fe.Field())
}

func gtParam(fe validator.FieldError) string {
	if fe.Tag() == "gte" {
		return "hoặc bằng " + fe.Param()
	}
	return fe.Param()
}

// ValidateStay đọc ngày lưu trú; ngày sai định dạng trả về INVALID_FORMAT
func ValidateStay(checkIn, checkOut string) (booking.StayRange, error) {
	stay, err := booking.ParseStayRange(checkIn, checkOut)
	if err != nil {
		return booking.StayRange{}, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Ngày không đúng định dạng yyyy-mm-dd hoặc dd/mm/yyyy", err)
	}
	return stay, nil
}

// ValidateTier đọc hạng giá từ path/body
func ValidateTier(value string) (booking.Tier, error) {
	tier, err := booking.ParseTier(value)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidTierSelection, err)
	}
	return tier, nil
}
