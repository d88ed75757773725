package booking

import "hotelcart/constants"

// OfferFor áp dụng điều kiện mở bán: còn phòng và có giá cơ bản dương
func OfferFor(room Room) (Offer, bool) {
	if room.SellableCount <= 0 {
		return Offer{}, false
	}
	price, ok := ResolvePrice(room.Pricing)
	if !ok || price.BasePrice <= 0 {
		return Offer{}, false
	}
	return Offer{Room: room, Price: price}, true
}

// FilterSellable lọc ra các phòng đủ điều kiện bán
func FilterSellable(rooms []Room) []Offer {
	offers := make([]Offer, 0, len(rooms))
	for _, room := range rooms {
		if offer, ok := OfferFor(room); ok {
			offers = append(offers, offer)
		}
	}
	return offers
}

// AvailabilityOf phân biệt "không có phòng nào" và "không phòng nào đủ điều kiện"
func AvailabilityOf(rooms []Room, offers []Offer) string {
	if len(rooms) == 0 {
		return constants.AvailabilityEmpty
	}
	if len(offers) == 0 {
		return constants.AvailabilityNoneAvailable
	}
	return constants.AvailabilityReady
}
