package booking

import (
	"fmt"
	"math"
)

// Tier là hạng giá khách có thể mua cho một phòng
type Tier string

const (
	TierBase         Tier = "base"
	TierHalfDay      Tier = "halfDay"
	TierSinglePerson Tier = "singlePerson"
)

// Tiers liệt kê các hạng theo thứ tự hiển thị
var Tiers = []Tier{TierBase, TierHalfDay, TierSinglePerson}

func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierBase, TierHalfDay, TierSinglePerson:
		return Tier(s), nil
	}
	return "", fmt.Errorf("unknown tier %q", s)
}

type DiscountKind string

const (
	DiscountPercent DiscountKind = "PERCENT"
	DiscountFixed   DiscountKind = "FIXED"
)

type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// RawPricing là các trường giá thô nhận từ nguồn dữ liệu phòng
type RawPricing struct {
	FinalCustomerPrice     int64   `json:"finalCustomerPrice"`
	PriceAfterPriceSetting int64   `json:"priceAfterPriceSetting"`
	HotelDiscountAmount    int64   `json:"hotelDiscountAmount"`
	PriceSettingType       string  `json:"priceSettingType,omitempty"`
	PriceSettingValue      float64 `json:"priceSettingValue,omitempty"`
	HalfDayPrice           int64   `json:"halfDayPrice"`
	SinglePersonPrice      int64   `json:"singlePersonPrice"`
}

// PriceOption là các hạng giá đã chuẩn hóa của một phòng.
// Trường con trỏ nil nghĩa là hạng đó không được bán.
type PriceOption struct {
	BasePrice         int64     `json:"basePrice"`
	BasePriceRaw      *int64    `json:"basePriceRaw,omitempty"`
	HalfDayPrice      *int64    `json:"halfDayPrice,omitempty"`
	SinglePersonPrice *int64    `json:"singlePersonPrice,omitempty"`
	Discount          *Discount `json:"discount,omitempty"`
	DiscountPercent   int       `json:"discountPercent"`
}

// PriceFor trả về đơn giá theo hạng, ok=false nếu hạng không có giá
func (p PriceOption) PriceFor(tier Tier) (int64, bool) {
	switch tier {
	case TierBase:
		return p.BasePrice, p.BasePrice > 0
	case TierHalfDay:
		if p.HalfDayPrice != nil {
			return *p.HalfDayPrice, true
		}
	case TierSinglePerson:
		if p.SinglePersonPrice != nil {
			return *p.SinglePersonPrice, true
		}
	}
	return 0, false
}

// ResolvePrice chuyển giá thô thành PriceOption.
// Phòng không có giá bán dương thì không có PriceOption (ok=false).
func ResolvePrice(raw RawPricing) (PriceOption, bool) {
	if raw.FinalCustomerPrice <= 0 {
		return PriceOption{}, false
	}

	opt := PriceOption{BasePrice: raw.FinalCustomerPrice}
	if raw.PriceAfterPriceSetting > 0 {
		opt.BasePriceRaw = positive(raw.PriceAfterPriceSetting)
	}

	if opt.BasePriceRaw != nil && *opt.BasePriceRaw > opt.BasePrice {
		opt.DiscountPercent = DiscountPercentOf(*opt.BasePriceRaw, opt.BasePrice)
		amount := raw.HotelDiscountAmount
		if amount <= 0 {
			amount = *opt.BasePriceRaw - opt.BasePrice
		}
		opt.Discount = &Discount{Kind: DiscountFixed, Value: float64(amount)}

		// FIXED settings keep the derived percent.
		if DiscountKind(raw.PriceSettingType) == DiscountPercent && raw.PriceSettingValue > 0 {
			opt.DiscountPercent = int(math.Round(raw.PriceSettingValue))
			opt.Discount = &Discount{Kind: DiscountPercent, Value: raw.PriceSettingValue}
		}
	}

	opt.HalfDayPrice = positive(raw.HalfDayPrice)
	opt.SinglePersonPrice = positive(raw.SinglePersonPrice)
	return opt, true
}

// DiscountPercentOf tính % giảm, tối thiểu 1 khi có chênh lệch dương
func DiscountPercentOf(raw, price int64) int {
	if raw <= 0 || raw <= price {
		return 0
	}
	percent := int(math.Round(float64(raw-price) / float64(raw) * 100))
	if percent < 1 {
		return 1
	}
	return percent
}

func positive(v int64) *int64 {
	if v <= 0 {
		return nil
	}
	return &v
}
