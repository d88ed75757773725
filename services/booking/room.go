package booking

// Room là một cấu hình phòng đang mở bán của khách sạn
type Room struct {
	ID               uint       `json:"id"`
	RoomTypeID       uint       `json:"roomTypeId"`
	RoomTypeName     string     `json:"roomTypeName"`
	RoomCategoryID   uint       `json:"roomCategoryId"`
	RoomCategoryName string     `json:"roomCategoryName"`
	Size             int        `json:"size"`
	Adults           int        `json:"adults"`
	Children         int        `json:"children"`
	BedType          string     `json:"bedType"`
	Facilities       []string   `json:"facilities,omitempty"`
	BathFacilities   []string   `json:"bathFacilities,omitempty"`
	SellableCount    int        `json:"sellableCount"`
	Pricing          RawPricing `json:"pricing"`
}

// DisplayName ghép loại phòng và hạng phòng
func (r Room) DisplayName() string {
	switch {
	case r.RoomCategoryName == "":
		return r.RoomTypeName
	case r.RoomTypeName == "":
		return r.RoomCategoryName
	}
	return r.RoomCategoryName + " - " + r.RoomTypeName
}

// Offer là phòng đủ điều kiện bán kèm PriceOption đã tính
type Offer struct {
	Room  Room        `json:"room"`
	Price PriceOption `json:"price"`
}

// Catalog là danh sách phòng chỉ đọc của một phiên
type Catalog struct {
	rooms  []Room
	offers []Offer
	index  map[uint]int
}

func NewCatalog(rooms []Room) *Catalog {
	c := &Catalog{
		rooms: make([]Room, 0, len(rooms)),
		index: make(map[uint]int),
	}
	for _, room := range rooms {
		if room.SellableCount < 0 {
			room.SellableCount = 0
		}
		c.rooms = append(c.rooms, room)
		if offer, ok := OfferFor(room); ok {
			c.index[room.ID] = len(c.offers)
			c.offers = append(c.offers, offer)
		}
	}
	return c
}

// Rooms trả về toàn bộ phòng, kể cả phòng không bán được
func (c *Catalog) Rooms() []Room {
	return c.rooms
}

// Offers trả về các phòng bán được, giữ thứ tự gốc
func (c *Catalog) Offers() []Offer {
	return c.offers
}

func (c *Catalog) Offer(roomID uint) (Offer, bool) {
	i, ok := c.index[roomID]
	if !ok {
		return Offer{}, false
	}
	return c.offers[i], true
}

// Availability trả về trạng thái hiển thị của danh sách phòng
func (c *Catalog) Availability() string {
	return AvailabilityOf(c.rooms, c.offers)
}
