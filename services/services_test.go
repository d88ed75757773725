package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hotelcart/services/booking"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func testStay(from, to int) booking.StayRange {
	return booking.NewStayRange(
		time.Date(2025, 3, from, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, to, 0, 0, 0, 0, time.UTC),
	)
}

func sampleRooms() []booking.Room {
	return []booking.Room{
		{
			ID: 1, RoomTypeID: 10, RoomTypeName: "Deluxe", RoomCategoryID: 100, RoomCategoryName: "Double",
			Adults: 2, BedType: "Queen", SellableCount: 3,
			Pricing: booking.RawPricing{FinalCustomerPrice: 100000, HalfDayPrice: 60000},
		},
		{
			ID: 2, RoomTypeID: 20, RoomTypeName: "Standard", RoomCategoryID: 200, RoomCategoryName: "Twin",
			Adults: 2, BedType: "Twin", SellableCount: 1,
			Pricing: booking.RawPricing{FinalCustomerPrice: 150000, PriceAfterPriceSetting: 200000, HotelDiscountAmount: 50000},
		},
	}
}

// fakeFetcher đếm số lần gọi và có thể chặn đến khi được thả
type fakeFetcher struct {
	mu      sync.Mutex
	calls   int
	rooms   []booking.Room
	err     error
	release chan struct{}
}

func (f *fakeFetcher) FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.rooms, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
