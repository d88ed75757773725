package models

import "time"

// RoomRate là giá và số phòng còn bán của một phòng trong khoảng [FromDate, ToDate].
// Cả hai đầu đều tính theo đêm.
type RoomRate struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	RoomID                 uint      `gorm:"index" json:"roomId"`
	FromDate               time.Time `gorm:"index" json:"fromDate"`
	ToDate                 time.Time `gorm:"index" json:"toDate"`
	SellableCount          int       `json:"sellableCount"`
	FinalCustomerPrice     int64     `json:"finalCustomerPrice"`
	PriceAfterPriceSetting int64     `json:"priceAfterPriceSetting"`
	HotelDiscountAmount    int64     `json:"hotelDiscountAmount"`
	PriceSettingType       string    `json:"priceSettingType"`
	PriceSettingValue      float64   `json:"priceSettingValue"`
	HalfDayPrice           int64     `json:"halfDayPrice"`
	SinglePersonPrice      int64     `json:"singlePersonPrice"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Covers cho biết đêm night có nằm trong khoảng áp dụng không
func (r RoomRate) Covers(night time.Time) bool {
	return !night.Before(r.FromDate) && !night.After(r.ToDate)
}
