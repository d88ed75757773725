package booking

import (
	"math"
	"time"

	"hotelcart/utils"
)

// StayRange là cặp ngày nhận/trả phòng
type StayRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewStayRange chuẩn hóa về ngày lịch; nếu ngày trả không sau ngày nhận
// thì tự lùi ngày trả thành ngày nhận + 1.
func NewStayRange(checkIn, checkOut time.Time) StayRange {
	in := utils.TruncateDay(checkIn)
	out := utils.TruncateDay(checkOut)
	if !out.After(in) {
		out = in.AddDate(0, 0, 1)
	}
	return StayRange{CheckIn: in, CheckOut: out}
}

// ParseStayRange đọc ngày từ chuỗi rồi chuẩn hóa như NewStayRange
func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return StayRange{}, err
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return StayRange{}, err
	}
	return NewStayRange(in, out), nil
}

// Nights = ceil(số ngày), tối thiểu 1
func (s StayRange) Nights() int {
	n := int(math.Ceil(s.CheckOut.Sub(s.CheckIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// Dates liệt kê từng đêm lưu trú, bắt đầu từ ngày nhận phòng
func (s StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.CheckIn; d.Before(s.CheckOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (s StayRange) Key() string {
	return utils.FormatDate(s.CheckIn) + ":" + utils.FormatDate(s.CheckOut)
}

func (s StayRange) Equal(o StayRange) bool {
	return s.CheckIn.Equal(o.CheckIn) && s.CheckOut.Equal(o.CheckOut)
}
