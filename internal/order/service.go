package order

import (
	"errors"
	"fmt"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrEmptyOrder     = errors.New("sipariş en az bir kalem içermeli")
	ErrOrderNotFound  = errors.New("sipariş bulunamadı")
	ErrNotOwner       = errors.New("bu sipariş size ait değil")
	ErrInvalidStatus  = errors.New("geçersiz sipariş durumu")
	ErrBadQuantity    = errors.New("adet 0'dan büyük olmalı")
)

// UnknownItemError: siparişte menüde olmayan bir ürün var.
type UnknownItemError struct {
	MenuItemID uint
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("menüde %d id'li ürün yok", e.MenuItemID)
}

// StockError: istenen adet mevcut stoğu aşıyor.
type StockError struct {
	MenuItemID uint
	Name       string
	Requested  int
	Available  int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%q için stok yetersiz: istenen %d, mevcut %d", e.Name, e.Requested, e.Available)
}

// NotCancellableError: sipariş new durumunda değil, iptal edilemez.
type NotCancellableError struct {
	Current models.OrderStatus
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("sadece new durumundaki siparişler iptal edilebilir (mevcut: %s)", e.Current)
}

type ItemRequest struct {
	MenuItemID uint `json:"menuId"`
	Quantity   int  `json:"quantity"`
}

// Create: sepeti tek transaction içinde siparişe çevirir. Stok düşümü
// koşullu UPDATE ile yapılır (stock >= adet); satır kilidini UPDATE'in
// kendisi aldığı için eşzamanlı siparişler stoğu eksiye düşüremez.
// Herhangi bir kalem başarısız olursa hiçbir şey yazılmaz.
func Create(db *gorm.DB, userID uint, items []ItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrBadQuantity
		}
	}

	var created models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			var mi models.MenuItem
			if err := tx.First(&mi, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &UnknownItemError{MenuItemID: it.MenuItemID}
				}
				return err
			}

			res := tx.Model(&models.MenuItem{}).
				Where("id = ? AND stock >= ?", it.MenuItemID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				var cur models.MenuItem
				if err := tx.Select("stock", "name").First(&cur, it.MenuItemID).Error; err != nil {
					return err
				}
				return &StockError{
					MenuItemID: it.MenuItemID,
					Name:       cur.Name,
					Requested:  it.Quantity,
					Available:  cur.Stock,
				}
			}

			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: mi.ID,
				Quantity:   it.Quantity,
				UnitPrice:  mi.Price,
			})
		}

		created = models.Order{
			UserID: userID,
			Status: models.OrderStatusNew,
			Items:  orderItems,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}

	return Get(db, created.ID)
}

// Get: siparişi kalemleri ve müşterisiyle birlikte yükler.
func Get(db *gorm.DB, orderID uint) (*models.Order, error) {
	var o models.Order
	err := db.Preload("Items.MenuItem").Preload("User").First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus: düz enum yazımı; geçiş grafiği bilinçli olarak yok.
func UpdateStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := Get(db, orderID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(o).Update("status", status).Error; err != nil {
		return nil, err
	}
	return Get(db, orderID)
}

// Cancel: sadece new durumunda ve sahibi (veya staff/admin) tarafından.
// Sipariş ve kalemleri silinir; düşülen stok geri YAZILMAZ.
func Cancel(db *gorm.DB, orderID uint, actingUserID uint, role models.UserRole) error {
	var o models.Order
	if err := db.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if role != models.RoleAdmin && role != models.RoleStaff && o.UserID != actingUserID {
		return ErrNotOwner
	}
	if o.Status != models.OrderStatusNew {
		return &NotCancellableError{Current: o.Status}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&o).Error
	})
}

// List: tüm siparişler, en yeni önce.
func List(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items.MenuItem").Preload("User").
		Order("created_at desc").Find(&orders).Error
	return orders, err
}

// ListByUser: kullanıcının kendi siparişleri, en yeni önce.
func ListByUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("Items.MenuItem").Preload("User").
		Order("created_at desc").Find(&orders).Error
	return orders, err
}

// EffectivePrice: PRICE_MODE'a göre kalemin birim fiyatı.
func EffectivePrice(item *models.OrderItem, priceMode string) float64 {
	if priceMode == config.PriceModeSnapshot {
		return item.UnitPrice
	}
	return item.MenuItem.Price
}

// Total: sipariş toplamı kuruş cinsinden (kalem başına yuvarlama).
func Total(o *models.Order, priceMode string) int64 {
	var total int64
	for i := range o.Items {
		it := &o.Items[i]
		total += roundKurus(EffectivePrice(it, priceMode)) * int64(it.Quantity)
	}
	return total
}

func roundKurus(price float64) int64 {
	if price < 0 {
		return -roundKurus(-price)
	}
	return int64(price*100 + 0.5)
}
