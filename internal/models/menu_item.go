package models

import "time"

type MenuItem struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;unique"`
	Category    string  `gorm:"size:50;not null"`
	Price       float64 `gorm:"not null"` // liste fiyatı (TL)
	Description string  `gorm:"size:500"`
	ImageURL    string  `gorm:"size:255"`
	Available   bool    `gorm:"not null;default:true"`
	Stock       int     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
