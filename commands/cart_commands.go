package commands

import (
	"hotelcart/services/booking"
)

// CartCommand là một thao tác trên phiên giỏ hàng.
// Các command của cùng một phiên được thực thi tuần tự theo thứ tự nhận.
type CartCommand interface {
	Execute(session *booking.Session) error
	Name() string
}

// OpenSessionCommand gắn phiên với khách sạn
type OpenSessionCommand struct {
	HotelID   uint
	HotelName string
}

func NewOpenSessionCommand(hotelID uint, hotelName string) *OpenSessionCommand {
	return &OpenSessionCommand{HotelID: hotelID, HotelName: hotelName}
}

func (c *OpenSessionCommand) Execute(session *booking.Session) error {
	return session.Open(c.HotelID, c.HotelName)
}

func (c *OpenSessionCommand) Name() string { return "open_session" }

// SelectStayCommand đổi ngày lưu trú; Ticket được gán sau khi thực thi
type SelectStayCommand struct {
	Stay   booking.StayRange
	Ticket booking.FetchTicket
}

func NewSelectStayCommand(stay booking.StayRange) *SelectStayCommand {
	return &SelectStayCommand{Stay: stay}
}

func (c *SelectStayCommand) Execute(session *booking.Session) error {
	ticket, err := session.SelectStay(c.Stay)
	if err != nil {
		return err
	}
	c.Ticket = ticket
	return nil
}

func (c *SelectStayCommand) Name() string { return "select_stay" }

// SetQuantityCommand đặt số lượng cho (phòng, hạng); Result được gán sau khi thực thi
type SetQuantityCommand struct {
	RoomID   uint
	Tier     booking.Tier
	Quantity int
	Result   booking.Result
}

func NewSetQuantityCommand(roomID uint, tier booking.Tier, quantity int) *SetQuantityCommand {
	return &SetQuantityCommand{RoomID: roomID, Tier: tier, Quantity: quantity}
}

func (c *SetQuantityCommand) Execute(session *booking.Session) error {
	res, err := session.SetQuantity(c.RoomID, c.Tier, c.Quantity)
	c.Result = res
	return err
}

func (c *SetQuantityCommand) Name() string { return "set_quantity" }

// RemoveItemCommand xóa một dòng khỏi giỏ
type RemoveItemCommand struct {
	RoomID uint
	Tier   booking.Tier
}

func NewRemoveItemCommand(roomID uint, tier booking.Tier) *RemoveItemCommand {
	return &RemoveItemCommand{RoomID: roomID, Tier: tier}
}

func (c *RemoveItemCommand) Execute(session *booking.Session) error {
	return session.Remove(c.RoomID, c.Tier)
}

func (c *RemoveItemCommand) Name() string { return "remove_item" }

// ClearCartCommand xóa toàn bộ giỏ
type ClearCartCommand struct{}

func NewClearCartCommand() *ClearCartCommand {
	return &ClearCartCommand{}
}

func (c *ClearCartCommand) Execute(session *booking.Session) error {
	return session.ClearCart()
}

func (c *ClearCartCommand) Name() string { return "clear_cart" }

// Run thực thi lần lượt các command, dừng ở lỗi đầu tiên
func Run(session *booking.Session, cmds ...CartCommand) error {
	for _, cmd := range cmds {
		if err := cmd.Execute(session); err != nil {
			return err
		}
	}
	return nil
}
