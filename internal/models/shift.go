package models

import "time"

type Shift struct {
	ID      uint `gorm:"primaryKey"`
	StaffID uint `gorm:"index;not null"`
	Staff   Staff
	Date      string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	StartTime string `gorm:"size:5;not null"`        // HH:MM
	EndTime   string `gorm:"size:5;not null"`        // HH:MM
	CreatedAt time.Time
	UpdatedAt time.Time
}
