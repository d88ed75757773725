package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Room là một cấu hình phòng (loại phòng + hạng phòng) của khách sạn
type Room struct {
	RoomId           uint           `json:"id" gorm:"primaryKey"`
	AccommodationID  uint           `json:"accommodationId" gorm:"index"`
	RoomTypeID       uint           `json:"roomTypeId"`
	RoomTypeName     string         `json:"roomTypeName"`
	RoomCategoryID   uint           `json:"roomCategoryId"`
	RoomCategoryName string         `json:"roomCategoryName"`
	Acreage          int            `json:"acreage"`
	Adults           int            `json:"adults"`
	Children         int            `json:"children"`
	BedType          string         `json:"bedType"`
	Facilities       pq.StringArray `json:"facilities" gorm:"type:text[]"`
	BathFacilities   pq.StringArray `json:"bathFacilities" gorm:"type:text[]"`
	Status           int            `json:"status" gorm:"default:0"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Rates            []RoomRate     `json:"rates" gorm:"foreignKey:RoomID"`
}

// Trạng thái phòng: 0 mở bán, 1 tạm ngưng
const (
	RoomStatusOpen   = 0
	RoomStatusPaused = 1
)

func (r *Room) ValidateStatus() error {
	if r.Status != RoomStatusOpen && r.Status != RoomStatusPaused {
		return fmt.Errorf("invalid status: %d, must be 0 or 1", r.Status)
	}
	return nil
}
