package models

import "time"

type Staff struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:100;not null"`
	Email     string  `gorm:"size:100;not null"`
	Phone     string  `gorm:"size:20;not null"`
	Role      string  `gorm:"size:20;not null"`
	Wage      float64 `gorm:"not null;default:0"` // saatlik ücret (TL)
	CreatedAt time.Time
	UpdatedAt time.Time
}
