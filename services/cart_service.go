package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"hotelcart/builders"
	"hotelcart/commands"
	"hotelcart/constants"
	"hotelcart/dto"
	apperrors "hotelcart/errors"
	"hotelcart/services/booking"
	"hotelcart/services/catalog"
	"hotelcart/services/logger"
	"hotelcart/services/notification"
)

const defaultFetchTimeout = 10 * time.Second

// CartServiceOptions chứa các phụ thuộc của CartService
type CartServiceOptions struct {
	Store        SessionStore
	Fetcher      catalog.Fetcher
	Logger       logger.Logger
	Notifier     notification.Service
	Signer       *HandoffSigner
	FetchTimeout time.Duration
	// FilterRedis lưu bộ lọc phòng gần nhất của phiên; nil thì không ghi nhớ
	FilterRedis *redis.Client
}

// CartService đơn giản hóa việc tương tác giữa phiên, danh mục phòng và thanh toán.
// Mọi thao tác trên cùng một phiên được tuần tự hóa bằng khóa theo id phiên.
type CartService struct {
	store        SessionStore
	fetcher      catalog.Fetcher
	logger       logger.Logger
	notifier     notification.Service
	signer       *HandoffSigner
	fetchTimeout time.Duration
	filterRedis  *redis.Client

	locks *keyedMutex
	loads sync.WaitGroup
}

func NewCartService(opts CartServiceOptions) *CartService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.Nop{}
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	return &CartService{
		store:        opts.Store,
		fetcher:      opts.Fetcher,
		logger:       opts.Logger,
		notifier:     opts.Notifier,
		signer:       opts.Signer,
		fetchTimeout: opts.FetchTimeout,
		filterRedis:  opts.FilterRedis,
		locks:        newKeyedMutex(),
	}
}

// execute nạp phiên, chạy lần lượt các command rồi lưu lại, tất cả dưới khóa của phiên
func (s *CartService) execute(ctx context.Context, sessionID string, cmds ...commands.CartCommand) (*booking.Session, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := commands.Run(session, cmds...); err != nil {
		s.logger.Debug("Phiên %s: thao tác bị từ chối: %v", sessionID, err)
		return session, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		s.logger.Error("Không lưu được phiên %s: %v", sessionID, err)
		return nil, err
	}
	return session, nil
}

// Open gắn phiên với khách sạn, tạo phiên mới nếu chưa có hoặc phiên cũ đã thanh toán
func (s *CartService) Open(ctx context.Context, sessionID string, hotelID uint, hotelName string) (*booking.Session, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.store.Load(ctx, sessionID)
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		session = booking.NewSession(sessionID)
	case err != nil:
		return nil, err
	case session.Phase == constants.PhaseCheckoutHandoff:
		session = booking.NewSession(sessionID)
	}

	if err := commands.NewOpenSessionCommand(hotelID, hotelName).Execute(session); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("Phiên %s mở khách sạn %d", sessionID, hotelID)
	return session, nil
}

// SelectStay đổi ngày lưu trú và trả về vé cho lần tải danh sách phòng
func (s *CartService) SelectStay(ctx context.Context, sessionID string, stay booking.StayRange) (*booking.Session, booking.FetchTicket, error) {
	cmd := commands.NewSelectStayCommand(stay)
	session, err := s.execute(ctx, sessionID, cmd)
	if err != nil {
		return nil, booking.FetchTicket{}, err
	}
	s.logger.Info("Phiên %s chọn ngày %s (lần %d)", sessionID, stay.Key(), cmd.Ticket.Generation)
	return session, cmd.Ticket, nil
}

// StartLoad tải danh sách phòng ở goroutine riêng
func (s *CartService) StartLoad(ticket booking.FetchTicket) {
	s.loads.Add(1)
	go func() {
		defer s.loads.Done()
		if err := s.LoadCatalog(context.Background(), ticket); err != nil {
			s.logger.Error("Phiên %s: lỗi khi nạp danh sách phòng: %v", ticket.SessionID, err)
		}
	}()
}

// Wait chờ các lần tải đang chạy kết thúc
func (s *CartService) Wait() {
	s.loads.Wait()
}

// LoadCatalog gọi Fetcher rồi nạp kết quả vào phiên.
// Kết quả của vé đã bị thay thế (người dùng đổi ngày trong lúc tải) bị bỏ qua.
func (s *CartService) LoadCatalog(ctx context.Context, ticket booking.FetchTicket) error {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	rooms, fetchErr := s.fetcher.FetchRooms(fetchCtx, ticket.HotelID, ticket.Stay)
	cancel()

	unlock := s.locks.Lock(ticket.SessionID)
	defer unlock()

	session, err := s.store.Load(ctx, ticket.SessionID)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		s.logger.Debug("Phiên %s đã hết hạn, bỏ kết quả tải", ticket.SessionID)
		return nil
	}
	if err != nil {
		return err
	}

	var applied bool
	if fetchErr != nil {
		s.logger.Error("Phiên %s: tải danh sách phòng thất bại: %v", ticket.SessionID, fetchErr)
		applied = session.FailCatalog(ticket, fetchErr)
	} else {
		applied = session.ApplyCatalog(ticket, rooms)
	}
	if !applied {
		s.logger.Debug("Phiên %s: bỏ kết quả tải lần %d (hiện tại %d)", ticket.SessionID, ticket.Generation, session.Generation)
		return nil
	}
	if err := s.store.Save(ctx, session); err != nil {
		return err
	}

	event := notification.EventCatalogReady
	if session.Phase == constants.PhaseCatalogUnavailable {
		event = notification.EventCatalogUnavailable
	}
	msg := notification.NewMessageBuilder(event, session.ID).
		WithState(session.State(), session.Availability()).
		Build()
	if err := s.notifier.NotifySession(session.ID, msg); err != nil {
		s.logger.Error("Không gửi được thông báo cho phiên %s: %v", session.ID, err)
	}
	return nil
}

// SetQuantity đặt số lượng; Result.Clamped cho biết số lượng đã bị giới hạn theo số phòng còn bán
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, roomID uint, tier booking.Tier, quantity int) (booking.Result, *booking.Session, error) {
	cmd := commands.NewSetQuantityCommand(roomID, tier, quantity)
	session, err := s.execute(ctx, sessionID, cmd)
	if err != nil {
		return cmd.Result, nil, err
	}
	if cmd.Result.Clamped {
		s.logger.Info("[%s] Phiên %s: phòng %d hạng %s yêu cầu %d, áp dụng %d",
			apperrors.ErrCodeInventoryExceeded, sessionID, roomID, tier, cmd.Result.Requested, cmd.Result.Applied)
	}
	return cmd.Result, session, nil
}

func (s *CartService) Remove(ctx context.Context, sessionID string, roomID uint, tier booking.Tier) (*booking.Session, error) {
	return s.execute(ctx, sessionID, commands.NewRemoveItemCommand(roomID, tier))
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*booking.Session, error) {
	return s.execute(ctx, sessionID, commands.NewClearCartCommand())
}

// View trả về trạng thái hiện tại của phiên
func (s *CartService) View(ctx context.Context, sessionID string) (*booking.Session, error) {
	return s.store.Load(ctx, sessionID)
}

// Rooms lọc danh sách phòng bán được. Bộ lọc được gộp với lần lọc trước của phiên
// trừ khi reset = true.
func (s *CartService) Rooms(ctx context.Context, sessionID string, filter booking.RoomFilter, reset bool) (booking.FilterResult, booking.RoomFilter, error) {
	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return booking.FilterResult{}, filter, err
	}

	filter = s.rememberFilter(ctx, sessionID, filter, reset)

	switch session.Phase {
	case constants.PhaseDatesSelected:
		return booking.ApplyFilter(session.Catalog(), filter), filter, nil
	default:
		return booking.FilterResult{Offers: []booking.Offer{}, Availability: session.Availability()}, filter, nil
	}
}

func (s *CartService) rememberFilter(ctx context.Context, sessionID string, filter booking.RoomFilter, reset bool) booking.RoomFilter {
	if s.filterRedis == nil {
		return filter
	}
	if reset {
		if err := ClearLastRoomFilter(ctx, s.filterRedis, sessionID); err != nil {
			s.logger.Error("Không xóa được bộ lọc của phiên %s: %v", sessionID, err)
		}
	} else {
		last, err := GetLastRoomFilter(ctx, s.filterRedis, sessionID)
		if err != nil {
			s.logger.Error("Không đọc được bộ lọc của phiên %s: %v", sessionID, err)
		}
		filter = MergeRoomFilter(last, filter)
	}
	if filter.IsZero() {
		return filter
	}
	if err := SaveLastRoomFilter(ctx, s.filterRedis, sessionID, filter); err != nil {
		s.logger.Error("Không lưu được bộ lọc của phiên %s: %v", sessionID, err)
	}
	return filter
}

// Checkout dựng payload, ký token và đóng phiên
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	session, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.CheckoutReady(); err != nil {
		return nil, err
	}

	payload, err := builders.NewCheckoutBuilder().
		WithHotel(session.HotelID, session.HotelName).
		WithStay(session.Stay).
		WithItems(session.Cart.Snapshot()).
		Build()
	if err != nil {
		return nil, err
	}
	params, err := builders.CheckoutParams(payload)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Không tạo được tham số thanh toán", err)
	}
	encoded := params.Encode()

	resp := &dto.CheckoutResponse{Payload: *payload, Params: encoded}
	if s.signer != nil {
		token, expiresAt, err := s.signer.Sign(encoded)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInternal, "Không ký được dữ liệu thanh toán", err)
		}
		resp.Token = token
		resp.ExpiresAt = expiresAt
	}

	if err := session.MarkHandedOff(); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	if s.filterRedis != nil {
		if err := ClearLastRoomFilter(ctx, s.filterRedis, sessionID); err != nil {
			s.logger.Error("Không xóa được bộ lọc của phiên %s: %v", sessionID, err)
		}
	}

	s.logger.Info("Phiên %s chuyển sang thanh toán: %d phòng, tổng %d", sessionID, payload.TotalRooms, payload.TotalPrice)
	msg := notification.NewMessageBuilder(notification.EventCheckoutHandoff, sessionID).
		WithState(session.State(), session.Availability()).
		Build()
	if err := s.notifier.NotifySession(sessionID, msg); err != nil {
		s.logger.Error("Không gửi được thông báo cho phiên %s: %v", sessionID, err)
	}
	return resp, nil
}
