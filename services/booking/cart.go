package booking

import (
	apperrors "hotelcart/errors"
)

// Item là một dòng trong giỏ: phòng x hạng giá x số lượng.
// MaxQuantity là số phòng còn bán của phòng; trần còn lại theo hạng xem Cart.MaxSelectable.
type Item struct {
	RoomID         uint   `json:"roomId"`
	RoomTypeID     uint   `json:"roomTypeId"`
	RoomCategoryID uint   `json:"roomCategoryId"`
	RoomName       string `json:"roomName"`
	Tier           Tier   `json:"tier"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unitPrice"`
	MaxQuantity    int    `json:"maxQuantity"`
}

// Result mô tả kết quả một lần đặt số lượng
type Result struct {
	Requested int  `json:"requested"`
	Applied   int  `json:"applied"`
	Clamped   bool `json:"clamped"`
}

// Cart giữ các dòng đặt phòng theo thứ tự thêm vào.
// Tổng số lượng mọi hạng của một phòng không vượt quá SellableCount.
type Cart struct {
	Items []Item `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []Item{}}
}

// SetQuantity đặt số lượng cho (phòng, hạng). Số lượng vượt trần bị kẹp về trần
// và Result.Clamped được bật; số lượng 0 xóa dòng.
func (c *Cart) SetQuantity(offer Offer, tier Tier, quantity int) (Result, error) {
	res := Result{Requested: quantity}
	if quantity < 0 {
		return res, apperrors.ErrInvalidQuantity
	}

	roomID := offer.Room.ID
	if quantity == 0 {
		c.Remove(roomID, tier)
		return res, nil
	}

	price, ok := offer.Price.PriceFor(tier)
	if !ok {
		return res, apperrors.ErrInvalidTierSelection
	}
	if offer.Room.SellableCount <= 0 {
		return res, apperrors.ErrRoomNotSellable
	}

	ceiling := offer.Room.SellableCount - c.committedExcept(roomID, tier)
	if ceiling < 0 {
		ceiling = 0
	}
	applied := quantity
	if applied > ceiling {
		applied = ceiling
		res.Clamped = true
	}
	res.Applied = applied

	if applied == 0 {
		c.Remove(roomID, tier)
		return res, nil
	}

	item := Item{
		RoomID:         roomID,
		RoomTypeID:     offer.Room.RoomTypeID,
		RoomCategoryID: offer.Room.RoomCategoryID,
		RoomName:       offer.Room.DisplayName(),
		Tier:           tier,
		Quantity:       applied,
		UnitPrice:      price,
		MaxQuantity:    offer.Room.SellableCount,
	}
	if i := c.indexOf(roomID, tier); i >= 0 {
		c.Items[i] = item
	} else {
		c.Items = append(c.Items, item)
	}
	return res, nil
}

// Remove xóa (phòng, hạng) khỏi giỏ, không làm gì nếu không có
func (c *Cart) Remove(roomID uint, tier Tier) {
	if i := c.indexOf(roomID, tier); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot trả về bản sao các dòng để đọc
func (c *Cart) Snapshot() []Item {
	out := make([]Item, len(c.Items))
	copy(out, c.Items)
	return out
}

// QuantityFor trả về số lượng hiện tại của (phòng, hạng)
func (c *Cart) QuantityFor(roomID uint, tier Tier) int {
	if i := c.indexOf(roomID, tier); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// Committed là tổng số lượng của một phòng trên mọi hạng
func (c *Cart) Committed(roomID uint) int {
	total := 0
	for _, item := range c.Items {
		if item.RoomID == roomID {
			total += item.Quantity
		}
	}
	return total
}

// MaxSelectable = số lượng hiện tại của hạng + phần trần còn lại của phòng
func (c *Cart) MaxSelectable(offer Offer, tier Tier) int {
	if _, ok := offer.Price.PriceFor(tier); !ok {
		return 0
	}
	remaining := offer.Room.SellableCount - c.Committed(offer.Room.ID)
	if remaining < 0 {
		remaining = 0
	}
	return c.QuantityFor(offer.Room.ID, tier) + remaining
}

func (c *Cart) committedExcept(roomID uint, tier Tier) int {
	total := 0
	for _, item := range c.Items {
		if item.RoomID == roomID && item.Tier != tier {
			total += item.Quantity
		}
	}
	return total
}

func (c *Cart) indexOf(roomID uint, tier Tier) int {
	for i, item := range c.Items {
		if item.RoomID == roomID && item.Tier == tier {
			return i
		}
	}
	return -1
}
