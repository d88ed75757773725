package booking

import (
	"fmt"
	"time"

	"hotelcart/constants"
	apperrors "hotelcart/errors"
)

// Session là giỏ đặt phòng của một phiên duyệt web
type Session struct {
	ID         string     `json:"id"`
	HotelID    uint       `json:"hotelId"`
	HotelName  string     `json:"hotelName"`
	Stay       *StayRange `json:"stay,omitempty"`
	Phase      string     `json:"phase"`
	Generation uint64     `json:"generation"`
	Rooms      []Room     `json:"rooms"`
	Cart       Cart       `json:"cart"`
	LastError  string     `json:"lastError,omitempty"`
	FetchFail  bool       `json:"fetchFail,omitempty"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// FetchTicket gắn một lần tải danh sách phòng với khoảng ngày đã khởi tạo nó
type FetchTicket struct {
	SessionID  string    `json:"sessionId"`
	Generation uint64    `json:"generation"`
	HotelID    uint      `json:"hotelId"`
	Stay       StayRange `json:"stay"`
}

// Selector là dữ liệu cho ô chọn số lượng của một (phòng, hạng)
type Selector struct {
	RoomID        uint  `json:"roomId"`
	Tier          Tier  `json:"tier"`
	UnitPrice     int64 `json:"unitPrice"`
	Quantity      int   `json:"quantity"`
	MaxSelectable int   `json:"maxSelectable"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Phase:     constants.PhaseNoDatesSelected,
		Cart:      Cart{Items: []Item{}},
		UpdatedAt: time.Now(),
	}
}

// Open gắn phiên với khách sạn. Đổi khách sạn thì phiên quay về chưa chọn ngày.
func (s *Session) Open(hotelID uint, hotelName string) error {
	if s.Phase == constants.PhaseCheckoutHandoff {
		return apperrors.ErrSessionClosed
	}
	if hotelID == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "ID khách sạn không được để trống", nil)
	}
	if hotelID != s.HotelID {
		s.HotelID = hotelID
		s.Stay = nil
		s.Rooms = nil
		s.Cart.Clear()
		s.Generation++
		s.Phase = constants.PhaseNoDatesSelected
		s.LastError = ""
		s.FetchFail = false
	}
	s.HotelName = hotelName
	s.touch()
	return nil
}

// SelectStay đổi ngày lưu trú: xóa giỏ, bỏ danh sách phòng cũ và chuyển sang Loading.
// Vé trả về dùng để loại kết quả tải của các lần chọn ngày trước.
func (s *Session) SelectStay(stay StayRange) (FetchTicket, error) {
	if s.Phase == constants.PhaseCheckoutHandoff {
		return FetchTicket{}, apperrors.ErrSessionClosed
	}
	if s.HotelID == 0 {
		return FetchTicket{}, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Vui lòng chọn khách sạn trước", nil)
	}

	stay = NewStayRange(stay.CheckIn, stay.CheckOut)
	s.Stay = &stay
	s.Cart.Clear()
	s.Rooms = nil
	s.Generation++
	s.Phase = constants.PhaseLoading
	s.LastError = ""
	s.FetchFail = false
	s.touch()

	return FetchTicket{
		SessionID:  s.ID,
		Generation: s.Generation,
		HotelID:    s.HotelID,
		Stay:       stay,
	}, nil
}

// IsCurrent cho biết vé còn ứng với lần chọn ngày mới nhất không
func (s *Session) IsCurrent(ticket FetchTicket) bool {
	return s.Phase == constants.PhaseLoading && ticket.Generation == s.Generation
}

// ApplyCatalog nạp danh sách phòng; trả về false nếu vé đã bị thay thế
func (s *Session) ApplyCatalog(ticket FetchTicket, rooms []Room) bool {
	if !s.IsCurrent(ticket) {
		return false
	}
	s.Rooms = rooms
	s.FetchFail = false
	if len(rooms) == 0 {
		s.Phase = constants.PhaseCatalogUnavailable
	} else {
		s.Phase = constants.PhaseDatesSelected
	}
	s.touch()
	return true
}

// FailCatalog ghi nhận tải thất bại; trả về false nếu vé đã bị thay thế
func (s *Session) FailCatalog(ticket FetchTicket, cause error) bool {
	if !s.IsCurrent(ticket) {
		return false
	}
	s.Rooms = nil
	s.Phase = constants.PhaseCatalogUnavailable
	s.FetchFail = true
	if cause != nil {
		s.LastError = cause.Error()
	}
	s.touch()
	return true
}

// Catalog dựng lại chỉ mục phòng từ Rooms
func (s *Session) Catalog() *Catalog {
	return NewCatalog(s.Rooms)
}

func (s *Session) SetQuantity(roomID uint, tier Tier, quantity int) (Result, error) {
	if err := s.guardMutation(); err != nil {
		return Result{Requested: quantity}, err
	}
	offer, ok := s.Catalog().Offer(roomID)
	if !ok {
		if quantity == 0 {
			s.Cart.Remove(roomID, tier)
			s.touch()
			return Result{}, nil
		}
		return Result{Requested: quantity}, apperrors.Wrap(apperrors.ErrRoomNotSellable, fmt.Errorf("room %d", roomID))
	}
	res, err := s.Cart.SetQuantity(offer, tier, quantity)
	if err != nil {
		return res, err
	}
	s.touch()
	return res, nil
}

func (s *Session) Remove(roomID uint, tier Tier) error {
	_, err := s.SetQuantity(roomID, tier, 0)
	return err
}

func (s *Session) ClearCart() error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	s.Cart.Clear()
	s.touch()
	return nil
}

// CheckoutReady kiểm tra phiên có thể chuyển sang thanh toán không
func (s *Session) CheckoutReady() error {
	if err := s.guardMutation(); err != nil {
		return err
	}
	if s.Cart.IsEmpty() {
		return apperrors.ErrEmptyCart
	}
	return nil
}

// MarkHandedOff chuyển phiên sang trạng thái kết thúc sau khi tạo payload thành công
func (s *Session) MarkHandedOff() error {
	if err := s.CheckoutReady(); err != nil {
		return err
	}
	s.Phase = constants.PhaseCheckoutHandoff
	s.touch()
	return nil
}

// State trả về trạng thái giỏ theo vòng đời chọn ngày → chọn phòng → thanh toán
func (s *Session) State() string {
	switch s.Phase {
	case constants.PhaseLoading:
		return constants.StateLoading
	case constants.PhaseCatalogUnavailable:
		return constants.StateCatalogUnavailable
	case constants.PhaseCheckoutHandoff:
		return constants.StateCheckoutHandoff
	case constants.PhaseDatesSelected:
		if s.Cart.IsEmpty() {
			return constants.StateCartEmpty
		}
		return constants.StateCartNonEmpty
	}
	return constants.StateNoDatesSelected
}

// Availability trả về trạng thái hiển thị danh sách phòng
func (s *Session) Availability() string {
	switch s.Phase {
	case constants.PhaseLoading, constants.PhaseNoDatesSelected:
		return constants.AvailabilityLoading
	case constants.PhaseCatalogUnavailable:
		if s.FetchFail {
			return constants.AvailabilityUnavailable
		}
		return constants.AvailabilityEmpty
	}
	return s.Catalog().Availability()
}

func (s *Session) Nights() int {
	if s.Stay == nil {
		return 0
	}
	return s.Stay.Nights()
}

func (s *Session) Summary() Summary {
	return Aggregate(s.Cart.Items, s.Nights())
}

// Selectors liệt kê mọi (phòng, hạng) có giá kèm số lượng hiện tại và giá trị tối đa
func (s *Session) Selectors() []Selector {
	if s.Phase != constants.PhaseDatesSelected {
		return []Selector{}
	}
	selectors := []Selector{}
	for _, offer := range s.Catalog().Offers() {
		for _, tier := range Tiers {
			price, ok := offer.Price.PriceFor(tier)
			if !ok {
				continue
			}
			selectors = append(selectors, Selector{
				RoomID:        offer.Room.ID,
				Tier:          tier,
				UnitPrice:     price,
				Quantity:      s.Cart.QuantityFor(offer.Room.ID, tier),
				MaxSelectable: s.Cart.MaxSelectable(offer, tier),
			})
		}
	}
	return selectors
}

func (s *Session) guardMutation() error {
	switch s.Phase {
	case constants.PhaseDatesSelected:
		return nil
	case constants.PhaseLoading:
		return apperrors.ErrCatalogLoading
	case constants.PhaseCatalogUnavailable:
		return apperrors.ErrCatalogUnavailable
	case constants.PhaseCheckoutHandoff:
		return apperrors.ErrSessionClosed
	}
	return apperrors.ErrInvalidStayRange
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
