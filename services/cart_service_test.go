package services

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelcart/constants"
	apperrors "hotelcart/errors"
	"hotelcart/services/booking"
	"hotelcart/services/notification"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (n *recordingNotifier) NotifySession(_ string, msg notification.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
	return nil
}

func (n *recordingNotifier) events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.messages))
	for _, m := range n.messages {
		out = append(out, m.Event)
	}
	return out
}

type serviceFixture struct {
	svc      *CartService
	fetcher  *fakeFetcher
	notifier *recordingNotifier
	signer   *HandoffSigner
}

func newFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		fetcher:  &fakeFetcher{rooms: sampleRooms()},
		notifier: &recordingNotifier{},
		signer:   NewHandoffSigner("test-secret", 15*time.Minute),
	}
	f.svc = NewCartService(CartServiceOptions{
		Store:        NewMemorySessionStore(time.Hour),
		Fetcher:      f.fetcher,
		Notifier:     f.notifier,
		Signer:       f.signer,
		FetchTimeout: time.Second,
	})
	return f
}

// readySession mở phiên, chọn ngày và nạp danh sách phòng đồng bộ
func (f *serviceFixture) readySession(t *testing.T, id string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.Open(ctx, id, 7, "Khách sạn Hoa Sen")
	require.NoError(t, err)
	_, ticket, err := f.svc.SelectStay(ctx, id, testStay(1, 4))
	require.NoError(t, err)
	require.NoError(t, f.svc.LoadCatalog(ctx, ticket))
}

func TestCartService_FullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.readySession(t, "s-1")

	res, session, err := f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Applied)
	assert.Equal(t, constants.StateCartNonEmpty, session.State())

	res, session, err = f.svc.SetQuantity(ctx, "s-1", 1, booking.TierHalfDay, 2)
	require.NoError(t, err)
	assert.True(t, res.Clamped)
	assert.Equal(t, 1, res.Applied)

	sum := session.Summary()
	assert.Equal(t, 3, sum.TotalRoomCount)
	assert.Equal(t, int64(260000), sum.TotalPricePerNight)
	assert.Equal(t, int64(780000), sum.TotalPriceForStay)

	out, err := f.svc.Checkout(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, int64(780000), out.Payload.TotalPrice)
	assert.Equal(t, 3, out.Payload.Nights)

	params, err := f.signer.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Params, params)
	values, err := url.ParseQuery(params)
	require.NoError(t, err)
	assert.Equal(t, "7", values.Get("hotelId"))

	view, err := f.svc.View(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StateCheckoutHandoff, view.State())

	_, _, err = f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 1)
	assert.True(t, errors.Is(err, apperrors.ErrSessionClosed))

	assert.Equal(t, []string{notification.EventCatalogReady, notification.EventCheckoutHandoff}, f.notifier.events())
}

func TestCartService_UnknownSession(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.SetQuantity(context.Background(), "missing", 1, booking.TierBase, 1)
	assert.True(t, errors.Is(err, apperrors.ErrSessionNotFound))
}

func TestCartService_StayChangeClearsCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.readySession(t, "s-1")
	_, _, err := f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 2)
	require.NoError(t, err)

	session, _, err := f.svc.SelectStay(ctx, "s-1", testStay(1, 5))
	require.NoError(t, err)
	assert.True(t, session.Cart.IsEmpty())
	assert.Equal(t, constants.StateLoading, session.State())
}

func TestCartService_SupersededLoadIsDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "s-1", 7, "Hoa Sen")
	require.NoError(t, err)

	f.fetcher.release = make(chan struct{})
	_, first, err := f.svc.SelectStay(ctx, "s-1", testStay(1, 2))
	require.NoError(t, err)
	f.svc.StartLoad(first)

	_, second, err := f.svc.SelectStay(ctx, "s-1", testStay(5, 8))
	require.NoError(t, err)
	f.svc.StartLoad(second)

	close(f.fetcher.release)
	f.svc.Wait()

	session, err := f.svc.View(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, second.Generation, session.Generation)
	assert.Equal(t, constants.StateCartEmpty, session.State())
	assert.Equal(t, 3, session.Nights())
	assert.Equal(t, 2, f.fetcher.callCount())
	assert.Equal(t, []string{notification.EventCatalogReady}, f.notifier.events())
}

func TestCartService_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.fetcher.err = errors.New("connection refused")
	ctx := context.Background()
	f.readySession(t, "s-1")

	session, err := f.svc.View(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StateCatalogUnavailable, session.State())
	assert.Equal(t, constants.AvailabilityUnavailable, session.Availability())

	_, _, err = f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 1)
	assert.True(t, errors.Is(err, apperrors.ErrCatalogUnavailable))
	assert.Equal(t, []string{notification.EventCatalogUnavailable}, f.notifier.events())
}

func TestCartService_FetchTimeout(t *testing.T) {
	f := newFixture(t)
	f.svc.fetchTimeout = 20 * time.Millisecond
	f.fetcher.release = make(chan struct{})
	defer close(f.fetcher.release)
	f.readySession(t, "s-1")

	session, err := f.svc.View(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StateCatalogUnavailable, session.State())
	assert.Contains(t, session.LastError, "deadline")
}

func TestCartService_MutationsWhileLoading(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "s-1", 7, "Hoa Sen")
	require.NoError(t, err)
	_, _, err = f.svc.SelectStay(ctx, "s-1", testStay(1, 2))
	require.NoError(t, err)

	_, _, err = f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 1)
	assert.True(t, errors.Is(err, apperrors.ErrCatalogLoading))

	_, err = f.svc.Checkout(ctx, "s-1")
	assert.True(t, errors.Is(err, apperrors.ErrCatalogLoading))
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	f := newFixture(t)
	f.readySession(t, "s-1")

	_, err := f.svc.Checkout(context.Background(), "s-1")
	assert.True(t, errors.Is(err, apperrors.ErrEmptyCart))

	session, err := f.svc.View(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, constants.StateCartEmpty, session.State())
}

func TestCartService_CheckoutIdempotentPayload(t *testing.T) {
	build := func() string {
		f := newFixture(t)
		f.readySession(t, "s-1")
		_, _, err := f.svc.SetQuantity(context.Background(), "s-1", 2, booking.TierBase, 1)
		require.NoError(t, err)
		_, _, err = f.svc.SetQuantity(context.Background(), "s-1", 1, booking.TierBase, 2)
		require.NoError(t, err)
		out, err := f.svc.Checkout(context.Background(), "s-1")
		require.NoError(t, err)
		return out.Params
	}
	assert.Equal(t, build(), build())
}

func TestCartService_OpenAfterHandoffStartsFresh(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.readySession(t, "s-1")
	_, _, err := f.svc.SetQuantity(ctx, "s-1", 1, booking.TierBase, 1)
	require.NoError(t, err)
	_, err = f.svc.Checkout(ctx, "s-1")
	require.NoError(t, err)

	session, err := f.svc.Open(ctx, "s-1", 7, "Hoa Sen")
	require.NoError(t, err)
	assert.Equal(t, constants.StateNoDatesSelected, session.State())
	assert.True(t, session.Cart.IsEmpty())
}

func TestCartService_ConcurrentMutationsKeepInvariant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.readySession(t, "s-1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tier := booking.TierBase
			if i%2 == 0 {
				tier = booking.TierHalfDay
			}
			_, _, _ = f.svc.SetQuantity(ctx, "s-1", 1, tier, 1+i%3)
		}(i)
	}
	wg.Wait()

	session, err := f.svc.View(ctx, "s-1")
	require.NoError(t, err)
	assert.LessOrEqual(t, session.Cart.Committed(1), 3)
	assert.Equal(t, 0, f.svc.locks.size())
}

func TestCartService_RoomsRemembersFilter(t *testing.T) {
	_, rdb := newTestRedis(t)
	f := newFixture(t)
	f.svc.filterRedis = rdb
	ctx := context.Background()
	f.readySession(t, "s-1")

	adults := 2
	res, used, err := f.svc.Rooms(ctx, "s-1", booking.RoomFilter{BedType: "twin", Adults: &adults}, false)
	require.NoError(t, err)
	require.Len(t, res.Offers, 1)
	assert.Equal(t, uint(2), res.Offers[0].Room.ID)
	assert.Equal(t, "twin", used.BedType)

	// lần sau chỉ gửi keyword, bedType được giữ lại
	res, used, err = f.svc.Rooms(ctx, "s-1", booking.RoomFilter{Keyword: "deluxe"}, false)
	require.NoError(t, err)
	assert.Equal(t, "twin", used.BedType)
	assert.Equal(t, constants.AvailabilityNoMatch, res.Availability)

	res, used, err = f.svc.Rooms(ctx, "s-1", booking.RoomFilter{Keyword: "deluxe"}, true)
	require.NoError(t, err)
	assert.Empty(t, used.BedType)
	require.Len(t, res.Offers, 1)
	assert.Equal(t, uint(1), res.Offers[0].Room.ID)
}

func TestCartService_RoomsWhileLoading(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Open(ctx, "s-1", 7, "Hoa Sen")
	require.NoError(t, err)
	_, _, err = f.svc.SelectStay(ctx, "s-1", testStay(1, 2))
	require.NoError(t, err)

	res, _, err := f.svc.Rooms(ctx, "s-1", booking.RoomFilter{}, false)
	require.NoError(t, err)
	assert.Equal(t, constants.AvailabilityLoading, res.Availability)
	assert.Empty(t, res.Offers)
}
