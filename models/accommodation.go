package models

import (
	"fmt"
	"time"
)

// Trạng thái mở bán của khách sạn
const (
	AccommodationStatusHidden = 0
	AccommodationStatusActive = 1
)

type Accommodation struct {
	ID           uint      `json:"id" gorm:"primaryKey"` // ID cho hotel
	Name         string    `json:"name"`                 // Tên khách sạn
	Address      string    `json:"address"`
	Province     string    `json:"province"`
	TimeCheckIn  string    `json:"timeCheckIn"`
	TimeCheckOut string    `json:"timeCheckOut"`
	Status       int       `json:"status" gorm:"default:1"`
	CreateAt     time.Time `gorm:"autoCreateTime"`
	UpdateAt     time.Time `gorm:"autoUpdateTime"`
	Rooms        []Room    `json:"rooms" gorm:"foreignKey:AccommodationID"` // Danh sách các phòng
}

func (a *Accommodation) ValidateStatus() error {
	if a.Status != AccommodationStatusHidden && a.Status != AccommodationStatusActive {
		return fmt.Errorf("invalid Status: %d, must be 0 or 1", a.Status)
	}
	return nil
}
