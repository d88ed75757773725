package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotelcart/services/booking"
	"hotelcart/services/catalog"
	"hotelcart/services/logger"
	"hotelcart/utils"
)

// CachedFetcher đặt cache Redis phía trước một catalog.Fetcher.
// Lỗi cache chỉ được ghi log, không làm hỏng lần tải.
type CachedFetcher struct {
	next   catalog.Fetcher
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedFetcher(next catalog.Fetcher, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedFetcher {
	return &CachedFetcher{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func CatalogCacheKey(hotelID uint, stay booking.StayRange) string {
	return fmt.Sprintf("rooms:catalog:%d:%s:%s", hotelID, utils.FormatDate(stay.CheckIn), utils.FormatDate(stay.CheckOut))
}

func (f *CachedFetcher) FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
	key := CatalogCacheKey(hotelID, stay)

	var rooms []booking.Room
	found, err := GetFromRedis(ctx, f.rdb, key, &rooms)
	if err != nil {
		f.logger.Error("Không đọc được cache %s: %v", key, err)
	} else if found {
		f.logger.Debug("Cache hit %s", key)
		return rooms, nil
	}

	rooms, err = f.next.FetchRooms(ctx, hotelID, stay)
	if err != nil {
		return nil, err
	}
	if err := SetToRedis(ctx, f.rdb, key, rooms, f.ttl); err != nil {
		f.logger.Error("Không ghi được cache %s: %v", key, err)
	}
	return rooms, nil
}

// Invalidate xóa cache của một khách sạn cho khoảng lưu trú
func (f *CachedFetcher) Invalidate(ctx context.Context, hotelID uint, stay booking.StayRange) error {
	return DeleteFromRedis(ctx, f.rdb, CatalogCacheKey(hotelID, stay))
}
