// Package catalog lấy danh sách phòng của khách sạn cho một khoảng lưu trú.
package catalog

import (
	"context"

	"hotelcart/services/booking"
)

// Fetcher trả về toàn bộ phòng của khách sạn kèm giá và số phòng còn bán
// cho khoảng lưu trú. Phòng không bán được vẫn được trả về.
type Fetcher interface {
	FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error)
}

// FetcherFunc cho phép dùng một hàm làm Fetcher
type FetcherFunc func(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error)

func (f FetcherFunc) FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
	return f(ctx, hotelID, stay)
}
