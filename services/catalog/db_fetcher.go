package catalog

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotelcart/models"
	"hotelcart/services/booking"
	"hotelcart/services/logger"
	"hotelcart/utils"
)

// DBFetcher đọc phòng và bảng giá từ Postgres
type DBFetcher struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewDBFetcher(db *gorm.DB, log logger.Logger) *DBFetcher {
	return &DBFetcher{DB: db, Logger: log}
}

func (f *DBFetcher) FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
	var rooms []models.Room
	lastNight := stay.CheckOut.AddDate(0, 0, -1)

	err := f.DB.WithContext(ctx).
		Where("accommodation_id = ? AND status = ?", hotelID, models.RoomStatusOpen).
		Preload("Rates", "from_date <= ? AND to_date >= ?", lastNight, stay.CheckIn).
		Order("room_id ASC").
		Find(&rooms).Error
	if err != nil {
		f.Logger.Error("Lỗi khi lấy danh sách phòng của khách sạn %d: %v", hotelID, err)
		return nil, fmt.Errorf("query rooms for hotel %d: %w", hotelID, err)
	}

	result := make([]booking.Room, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, resolveRoomForStay(room, stay))
	}
	f.Logger.Debug("Khách sạn %d có %d phòng cho %s", hotelID, len(result), stay.Key())
	return result, nil
}

// resolveRoomForStay gộp bảng giá theo đêm: số phòng bán được là nhỏ nhất qua
// các đêm (đêm không có giá thì bằng 0), giá lấy theo đêm nhận phòng.
func resolveRoomForStay(room models.Room, stay booking.StayRange) booking.Room {
	out := booking.Room{
		ID:               room.RoomId,
		RoomTypeID:       room.RoomTypeID,
		RoomTypeName:     room.RoomTypeName,
		RoomCategoryID:   room.RoomCategoryID,
		RoomCategoryName: room.RoomCategoryName,
		Size:             room.Acreage,
		Adults:           room.Adults,
		Children:         room.Children,
		BedType:          room.BedType,
		Facilities:       []string(room.Facilities),
		BathFacilities:   []string(room.BathFacilities),
	}

	sellable := -1
	for i, night := range stay.Dates() {
		rate, ok := rateFor(room.Rates, night)
		if !ok {
			sellable = 0
			break
		}
		if i == 0 {
			out.Pricing = booking.RawPricing{
				FinalCustomerPrice:     rate.FinalCustomerPrice,
				PriceAfterPriceSetting: rate.PriceAfterPriceSetting,
				HotelDiscountAmount:    rate.HotelDiscountAmount,
				HalfDayPrice:           rate.HalfDayPrice,
				SinglePersonPrice:      rate.SinglePersonPrice,
				PriceSettingType:       rate.PriceSettingType,
				PriceSettingValue:      rate.PriceSettingValue,
			}
		}
		if sellable < 0 || rate.SellableCount < sellable {
			sellable = rate.SellableCount
		}
	}
	if sellable < 0 {
		sellable = 0
	}
	out.SellableCount = sellable
	return out
}

// rateFor chọn bảng giá áp dụng cho đêm; nhiều bảng chồng nhau thì lấy bảng tạo sau cùng
func rateFor(rates []models.RoomRate, night time.Time) (models.RoomRate, bool) {
	var (
		found models.RoomRate
		ok    bool
	)
	for _, rate := range rates {
		normalized := rate
		normalized.FromDate = utils.TruncateDay(rate.FromDate)
		normalized.ToDate = utils.TruncateDay(rate.ToDate)
		if !normalized.Covers(night) {
			continue
		}
		if !ok || rate.ID > found.ID {
			found, ok = rate, true
		}
	}
	return found, ok
}
