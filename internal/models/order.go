package models

import "time"

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusOnTheWay   OrderStatus = "on_the_way"
	OrderStatusServed     OrderStatus = "served"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Durumlar arası geçiş grafiği yok; sadece iptal new durumuyla sınırlı.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusPaid,
		OrderStatusPreparing, OrderStatusInProgress, OrderStatusReady,
		OrderStatusOnTheWay, OrderStatusServed, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	User      User
	Status    OrderStatus `gorm:"size:20;not null;default:new"`
	Items     []OrderItem `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey"`
	OrderID    uint `gorm:"index;not null"`
	MenuItemID uint `gorm:"index;not null"`
	MenuItem   MenuItem
	Quantity   int     `gorm:"not null"`
	UnitPrice  float64 `gorm:"not null"` // sipariş anındaki birim fiyat
	CreatedAt  time.Time
}
