package models

import "time"

// Bill: bölünmüş hesabın tek bir payı. Amount kuruş cinsinden tutulur.
type Bill struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   uint   `gorm:"index;not null"`
	Name      string `gorm:"size:100;not null"`
	Amount    int64  `gorm:"not null"`
	Paid      bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
