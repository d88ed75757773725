package dto

import (
	"time"

	"hotelcart/services/booking"
)

// OpenSessionRequest mở (hoặc đổi) khách sạn của phiên
type OpenSessionRequest struct {
	HotelID   uint   `json:"hotelId" validate:"required,gt=0"`
	HotelName string `json:"hotelName" validate:"max=255"`
}

// SelectStayRequest chọn ngày nhận/trả phòng (yyyy-mm-dd hoặc dd/mm/yyyy)
type SelectStayRequest struct {
	CheckIn  string `json:"checkIn" validate:"required"`
	CheckOut string `json:"checkOut" validate:"required"`
}

// SetQuantityRequest đặt số lượng cho một (phòng, hạng giá)
type SetQuantityRequest struct {
	RoomID   uint   `json:"roomId" validate:"required,gt=0"`
	Tier     string `json:"tier" validate:"required,oneof=base halfDay singlePerson"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// RoomFilterQuery là query string của GET /cart/rooms
type RoomFilterQuery struct {
	Keyword  string `form:"keyword" validate:"max=100"`
	Adults   *int   `form:"adults" validate:"omitempty,gte=0"`
	Children *int   `form:"children" validate:"omitempty,gte=0"`
	BedType  string `form:"bedType" validate:"max=50"`
	Reset    bool   `form:"reset"`
}

func (q RoomFilterQuery) ToFilter() booking.RoomFilter {
	return booking.RoomFilter{
		Keyword:  q.Keyword,
		Adults:   q.Adults,
		Children: q.Children,
		BedType:  q.BedType,
	}
}

// CartResponse là trạng thái giỏ trả về cho client
type CartResponse struct {
	SessionID    string             `json:"sessionId"`
	HotelID      uint               `json:"hotelId"`
	HotelName    string             `json:"hotelName"`
	CheckIn      string             `json:"checkIn,omitempty"`
	CheckOut     string             `json:"checkOut,omitempty"`
	Nights       int                `json:"nights"`
	State        string             `json:"state"`
	Availability string             `json:"availability"`
	Items        []booking.Item     `json:"items"`
	Selectors    []booking.Selector `json:"selectors"`
	Summary      booking.Summary    `json:"summary"`
	LastError    string             `json:"lastError,omitempty"`
}

// SetQuantityResponse cho biết số lượng thực sự được áp dụng
type SetQuantityResponse struct {
	Requested int          `json:"requested"`
	Applied   int          `json:"applied"`
	Clamped   bool         `json:"clamped"`
	Cart      CartResponse `json:"cart"`
}

// CatalogRoom là một phòng bán được kèm giá đã tính
type CatalogRoom struct {
	RoomID           uint                `json:"roomId"`
	Name             string              `json:"name"`
	RoomTypeName     string              `json:"roomTypeName"`
	RoomCategoryName string              `json:"roomCategoryName"`
	Size             int                 `json:"size"`
	Adults           int                 `json:"adults"`
	Children         int                 `json:"children"`
	BedType          string              `json:"bedType"`
	Facilities       []string            `json:"facilities"`
	BathFacilities   []string            `json:"bathFacilities"`
	SellableCount    int                 `json:"sellableCount"`
	Price            booking.PriceOption `json:"price"`
}

func NewCatalogRoom(offer booking.Offer) CatalogRoom {
	room := offer.Room
	return CatalogRoom{
		RoomID:           room.ID,
		Name:             room.DisplayName(),
		RoomTypeName:     room.RoomTypeName,
		RoomCategoryName: room.RoomCategoryName,
		Size:             room.Size,
		Adults:           room.Adults,
		Children:         room.Children,
		BedType:          room.BedType,
		Facilities:       room.Facilities,
		BathFacilities:   room.BathFacilities,
		SellableCount:    room.SellableCount,
		Price:            offer.Price,
	}
}

// RoomListResponse là danh sách phòng sau khi lọc
type RoomListResponse struct {
	Availability string             `json:"availability"`
	Suggestion   string             `json:"suggestion,omitempty"`
	Filter       booking.RoomFilter `json:"filter"`
	Rooms        []CatalogRoom      `json:"rooms"`
}

// CheckoutLine là một dòng trong payload chuyển sang bước thanh toán
type CheckoutLine struct {
	RoomCategoryID uint         `json:"roomCategoryId"`
	RoomTypeID     uint         `json:"roomTypeId"`
	RoomID         uint         `json:"roomId"`
	RoomName       string       `json:"roomName"`
	Tier           booking.Tier `json:"tier"`
	Quantity       int          `json:"quantity"`
	UnitPrice      int64        `json:"unitPrice"`
	LineTotal      int64        `json:"lineTotal"`
}

// CheckoutPayload là dữ liệu giỏ hàng gửi sang bước thanh toán
type CheckoutPayload struct {
	HotelID    uint           `json:"hotelId"`
	HotelName  string         `json:"hotelName"`
	CheckIn    string         `json:"checkIn"`
	CheckOut   string         `json:"checkOut"`
	Nights     int            `json:"nights"`
	TotalRooms int            `json:"totalRooms"`
	TotalPrice int64          `json:"totalPrice"`
	Rooms      []CheckoutLine `json:"rooms"`
}

// CheckoutResponse gồm payload, chuỗi query phẳng và token ký HS256
type CheckoutResponse struct {
	Payload   CheckoutPayload `json:"payload"`
	Params    string          `json:"params"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// OpenSessionResponse trả về id phiên để client gửi lại qua X-Session-ID
type OpenSessionResponse struct {
	SessionID string       `json:"sessionId"`
	Cart      CartResponse `json:"cart"`
}
