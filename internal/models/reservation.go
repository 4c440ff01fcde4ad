package models

import "time"

type Reservation struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100;not null"`
	Phone     string `gorm:"size:20;not null"`
	Date      string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Time      string `gorm:"size:8;not null"`        // HH:MM
	PartySize int    `gorm:"not null"`
	UserID    *uint  `gorm:"index"`
	TableID   uint   `gorm:"index;not null"`
	Table     Table
	CreatedAt time.Time
	UpdatedAt time.Time
}
