package booking

// Summary là các tổng suy ra từ giỏ, luôn tính lại cùng lúc
type Summary struct {
	TotalRoomCount     int   `json:"totalRoomCount"`
	TotalPricePerNight int64 `json:"totalPricePerNight"`
	Nights             int   `json:"nights"`
	TotalPriceForStay  int64 `json:"totalPriceForStay"`
}

// Aggregate tính tổng từ danh sách dòng, không giữ trạng thái giữa các lần gọi
func Aggregate(items []Item, nights int) Summary {
	s := Summary{Nights: nights}
	for _, item := range items {
		s.TotalRoomCount += item.Quantity
		s.TotalPricePerNight += item.UnitPrice * int64(item.Quantity)
	}
	s.TotalPriceForStay = s.TotalPricePerNight * int64(nights)
	return s
}
