package builders

import (
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"hotelcart/dto"
	apperrors "hotelcart/errors"
	"hotelcart/services/booking"
	"hotelcart/utils"
)

// CheckoutBuilder dựng payload thanh toán từ giỏ theo từng bước.
// Builder chỉ đọc, không thay đổi giỏ.
type CheckoutBuilder struct {
	hotelID   uint
	hotelName string
	stay      *booking.StayRange
	items     []booking.Item
}

// NewCheckoutBuilder tạo instance mới của CheckoutBuilder
func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{}
}

// WithHotel thêm thông tin khách sạn
func (b *CheckoutBuilder) WithHotel(id uint, name string) *CheckoutBuilder {
	b.hotelID = id
	b.hotelName = name
	return b
}

// WithStay thêm ngày lưu trú
func (b *CheckoutBuilder) WithStay(stay *booking.StayRange) *CheckoutBuilder {
	b.stay = stay
	return b
}

// WithItems thêm các dòng trong giỏ
func (b *CheckoutBuilder) WithItems(items []booking.Item) *CheckoutBuilder {
	b.items = items
	return b
}

// Build tạo payload hoàn chỉnh
func (b *CheckoutBuilder) Build() (*dto.CheckoutPayload, error) {
	if len(b.items) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	if b.stay == nil {
		return nil, apperrors.ErrInvalidStayRange
	}

	nights := b.stay.Nights()
	summary := booking.Aggregate(b.items, nights)

	lines := make([]dto.CheckoutLine, 0, len(b.items))
	for _, item := range b.items {
		lines = append(lines, dto.CheckoutLine{
			RoomCategoryID: item.RoomCategoryID,
			RoomTypeID:     item.RoomTypeID,
			RoomID:         item.RoomID,
			RoomName:       item.RoomName,
			Tier:           item.Tier,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			LineTotal:      item.UnitPrice * int64(item.Quantity) * int64(nights),
		})
	}

	return &dto.CheckoutPayload{
		HotelID:    b.hotelID,
		HotelName:  b.hotelName,
		CheckIn:    utils.FormatDate(b.stay.CheckIn),
		CheckOut:   utils.FormatDate(b.stay.CheckOut),
		Nights:     nights,
		TotalRooms: summary.TotalRoomCount,
		TotalPrice: summary.TotalPriceForStay,
		Rooms:      lines,
	}, nil
}

// CheckoutParams chuyển payload thành tham số phẳng cho URL thanh toán.
// url.Values.Encode sắp xếp theo khóa nên kết quả ổn định giữa các lần gọi.
func CheckoutParams(p *dto.CheckoutPayload) (url.Values, error) {
	rooms, err := json.Marshal(p.Rooms)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("hotelId", strconv.FormatUint(uint64(p.HotelID), 10))
	params.Set("hotelName", p.HotelName)
	params.Set("checkIn", p.CheckIn)
	params.Set("checkOut", p.CheckOut)
	params.Set("nights", strconv.Itoa(p.Nights))
	params.Set("rooms", string(rooms))
	params.Set("totalPrice", strconv.FormatInt(p.TotalPrice, 10))
	params.Set("totalRooms", strconv.Itoa(p.TotalRooms))
	return params, nil
}
