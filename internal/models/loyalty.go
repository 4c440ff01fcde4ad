package models

import "time"

// Loyalty: misafir koduna bağlı puan bakiyesi. Hesap gerektirmez.
type Loyalty struct {
	GuestCode string `gorm:"primaryKey;size:8"`
	Points    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Feedback struct {
	ID        uint   `gorm:"primaryKey"`
	GuestCode string `gorm:"size:8;index;not null"`
	Rating    int    `gorm:"not null"` // 1-5
	Comment   string `gorm:"size:500"`
	CreatedAt time.Time
}
