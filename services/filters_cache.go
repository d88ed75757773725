package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"hotelcart/services/booking"
)

const lastFilterTTL = 30 * time.Minute

func lastFilterKey(sessionID string) string {
	return "last_room_filter:" + sessionID
}

func SaveLastRoomFilter(ctx context.Context, rdb *redis.Client, sessionID string, filter booking.RoomFilter) error {
	return SetToRedis(ctx, rdb, lastFilterKey(sessionID), filter, lastFilterTTL)
}

// GetLastRoomFilter trả về bộ lọc rỗng nếu phiên chưa lọc lần nào
func GetLastRoomFilter(ctx context.Context, rdb *redis.Client, sessionID string) (booking.RoomFilter, error) {
	var filter booking.RoomFilter
	if _, err := GetFromRedis(ctx, rdb, lastFilterKey(sessionID), &filter); err != nil {
		return booking.RoomFilter{}, err
	}
	return filter, nil
}

func ClearLastRoomFilter(ctx context.Context, rdb *redis.Client, sessionID string) error {
	return DeleteFromRedis(ctx, rdb, lastFilterKey(sessionID))
}

// Merge bộ lọc cũ với yêu cầu mới: field trống lấy lại giá trị trước đó
func MergeRoomFilter(old, new booking.RoomFilter) booking.RoomFilter {
	new.Keyword = orString(new.Keyword, old.Keyword)
	new.BedType = orString(new.BedType, old.BedType)
	new.Adults = orIntPointer(new.Adults, old.Adults)
	new.Children = orIntPointer(new.Children, old.Children)
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
