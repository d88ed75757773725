package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"

	"hotelcart/services/booking"
	"hotelcart/services/logger"
	"hotelcart/utils"
)

// envelope là khung response {code, mess, data} của API danh mục phòng
type envelope struct {
	Code int             `json:"code"`
	Mess string          `json:"mess"`
	Data json.RawMessage `json:"data"`
}

// remoteRoom là một phòng trong response của API danh mục
type remoteRoom struct {
	ID                     uint     `json:"id"`
	RoomTypeID             uint     `json:"roomTypeId"`
	RoomTypeName           string   `json:"roomTypeName"`
	RoomCategoryID         uint     `json:"roomCategoryId"`
	RoomCategoryName       string   `json:"roomCategoryName"`
	Size                   int      `json:"size"`
	Adults                 int      `json:"adults"`
	Children               int      `json:"children"`
	BedType                string   `json:"bedType"`
	Facilities             []string `json:"facilities"`
	BathFacilities         []string `json:"bathFacilities"`
	SellableCount          int      `json:"sellableCount"`
	FinalCustomerPrice     int64    `json:"finalCustomerPrice"`
	PriceAfterPriceSetting int64    `json:"priceAfterPriceSetting"`
	HotelDiscountAmount    int64    `json:"hotelDiscountAmount"`
	HalfDayPrice           int64    `json:"halfDayPrice"`
	SinglePersonPrice      int64    `json:"singlePersonPrice"`
	PriceSettingType       string   `json:"priceSettingType"`
	PriceSettingValue      float64  `json:"priceSettingValue"`
}

func (r remoteRoom) toRoom() booking.Room {
	return booking.Room{
		ID:               r.ID,
		RoomTypeID:       r.RoomTypeID,
		RoomTypeName:     r.RoomTypeName,
		RoomCategoryID:   r.RoomCategoryID,
		RoomCategoryName: r.RoomCategoryName,
		Size:             r.Size,
		Adults:           r.Adults,
		Children:         r.Children,
		BedType:          r.BedType,
		Facilities:       r.Facilities,
		BathFacilities:   r.BathFacilities,
		SellableCount:    r.SellableCount,
		Pricing: booking.RawPricing{
			FinalCustomerPrice:     r.FinalCustomerPrice,
			PriceAfterPriceSetting: r.PriceAfterPriceSetting,
			HotelDiscountAmount:    r.HotelDiscountAmount,
			HalfDayPrice:           r.HalfDayPrice,
			SinglePersonPrice:      r.SinglePersonPrice,
			PriceSettingType:       r.PriceSettingType,
			PriceSettingValue:      r.PriceSettingValue,
		},
	}
}

// HTTPFetcher gọi API danh mục phòng bên ngoài
type HTTPFetcher struct {
	client *resty.Client
	logger logger.Logger
}

func NewHTTPFetcher(baseURL string, timeout time.Duration, log logger.Logger) *HTTPFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &HTTPFetcher{client: client, logger: log}
}

func (f *HTTPFetcher) FetchRooms(ctx context.Context, hotelID uint, stay booking.StayRange) ([]booking.Room, error) {
	var body envelope
	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParam("hotelId", strconv.FormatUint(uint64(hotelID), 10)).
		SetQueryParams(map[string]string{
			"checkIn":  utils.FormatDate(stay.CheckIn),
			"checkOut": utils.FormatDate(stay.CheckOut),
		}).
		SetResult(&body).
		SetError(&body).
		Get("/hotels/{hotelId}/rooms")
	if err != nil {
		f.logger.Error("Gọi API danh mục phòng thất bại (hotel %d): %v", hotelID, err)
		return nil, fmt.Errorf("fetch rooms for hotel %d: %w", hotelID, err)
	}
	if resp.IsError() {
		f.logger.Error("API danh mục phòng trả về HTTP %d (hotel %d): %s", resp.StatusCode(), hotelID, body.Mess)
		return nil, fmt.Errorf("catalog API status %d", resp.StatusCode())
	}
	if body.Code != 1 {
		f.logger.Error("API danh mục phòng trả về lỗi (hotel %d): %s", hotelID, body.Mess)
		return nil, fmt.Errorf("catalog API error: %s (code: %d)", body.Mess, body.Code)
	}

	var remote []remoteRoom
	if len(body.Data) > 0 && string(body.Data) != "null" {
		if err := json.Unmarshal(body.Data, &remote); err != nil {
			return nil, fmt.Errorf("decode rooms: %w", err)
		}
	}

	rooms := make([]booking.Room, 0, len(remote))
	for _, r := range remote {
		rooms = append(rooms, r.toRoom())
	}
	f.logger.Debug("API danh mục trả về %d phòng cho hotel %d", len(rooms), hotelID)
	return rooms, nil
}
