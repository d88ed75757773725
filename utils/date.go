package utils

import (
	"fmt"
	"strings"
	"time"

	"hotelcart/constants"
)

// ParseDate nhận ngày dạng yyyy-mm-dd hoặc dd/mm/yyyy, trả về 0h UTC của ngày đó
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{constants.DateLayout, constants.LegacyDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return TruncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// TruncateDay bỏ phần giờ, giữ nguyên ngày lịch
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}
