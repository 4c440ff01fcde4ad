package bill

import (
	"errors"
	"fmt"
	"math"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/order"

	"gorm.io/gorm"
)

// Kesirli paylaşımlarda (0.5/0.5 gibi) float toplamının birebir tutması
// beklenemez; kalem başına bu mutlak tolerans uygulanır.
const allocationTolerance = 1e-6

var (
	ErrNotOwner     = errors.New("bu sipariş size ait değil")
	ErrBillNotFound = errors.New("hesap payı bulunamadı")
	ErrNoShares     = errors.New("en az bir pay gerekli")
)

// UnknownShareItemError: pay, siparişte olmayan bir ürüne atıf yapıyor.
type UnknownShareItemError struct {
	MenuItemID uint
}

func (e *UnknownShareItemError) Error() string {
	return fmt.Sprintf("siparişte %d id'li ürün kalemi yok", e.MenuItemID)
}

// AllocationError: bir kalemin payları adedini tam bölüşmüyor.
type AllocationError struct {
	MenuItemID uint
	Expected   float64
	Allocated  float64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%d id'li kalem tam bölüşülmemiş: adet %g, dağıtılan %g",
		e.MenuItemID, e.Expected, e.Allocated)
}

type ShareItem struct {
	MenuItemID uint    `json:"menuItemId"`
	Quantity   float64 `json:"quantity"`
}

type ShareRequest struct {
	Name  string      `json:"name"`
	Items []ShareItem `json:"items"`
}

// Split: siparişin kalemlerini isimli paylara bölüştürür. Doğrulama tamamen
// yazımdan önce yapılır; eski paylar silinip yenileri tek transaction içinde
// yazılır, eski/yeni karışımı hiçbir zaman oluşmaz.
func Split(db *gorm.DB, orderID, userID uint, shares []ShareRequest, priceMode string) ([]models.Bill, error) {
	var o models.Order
	if err := db.First(&o, orderID).Error; err != nil || o.UserID != userID {
		return nil, ErrNotOwner
	}
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	var items []models.OrderItem
	if err := db.Preload("MenuItem").Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}

	byMenuID := make(map[uint]*models.OrderItem, len(items))
	for i := range items {
		byMenuID[items[i].MenuItemID] = &items[i]
	}

	// Pay tutarları ve kalem başına dağıtılan adetler
	allocated := make(map[uint]float64, len(items))
	amounts := make([]int64, len(shares))
	for si, share := range shares {
		if share.Name == "" {
			return nil, fmt.Errorf("pay adı boş olamaz")
		}
		var totalKurus int64
		for _, it := range share.Items {
			oi, ok := byMenuID[it.MenuItemID]
			if !ok {
				return nil, &UnknownShareItemError{MenuItemID: it.MenuItemID}
			}
			if it.Quantity < 0 {
				return nil, fmt.Errorf("pay adedi negatif olamaz")
			}
			allocated[it.MenuItemID] += it.Quantity

			// Kuruşa çevrilmiş fiyat, kalem katkısı toplanmadan önce yuvarlanır
			priceKurus := math.Round(order.EffectivePrice(oi, priceMode) * 100)
			totalKurus += int64(math.Round(priceKurus * it.Quantity))
		}
		amounts[si] = totalKurus
	}

	// Her kalemin adedi eksiksiz bölüşülmüş olmalı
	for _, oi := range items {
		if math.Abs(allocated[oi.MenuItemID]-float64(oi.Quantity)) > allocationTolerance {
			return nil, &AllocationError{
				MenuItemID: oi.MenuItemID,
				Expected:   float64(oi.Quantity),
				Allocated:  allocated[oi.MenuItemID],
			}
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.Bill{}).Error; err != nil {
			return err
		}
		for si, share := range shares {
			b := models.Bill{
				OrderID: orderID,
				Name:    share.Name,
				Amount:  amounts[si],
				Paid:    false,
			}
			if err := tx.Create(&b).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ListByOrder(db, orderID, userID)
}

// ListByOrder: siparişin payları (sadece sahibi).
func ListByOrder(db *gorm.DB, orderID, userID uint) ([]models.Bill, error) {
	var o models.Order
	if err := db.First(&o, orderID).Error; err != nil || o.UserID != userID {
		return nil, ErrNotOwner
	}

	var bills []models.Bill
	err := db.Where("order_id = ?", orderID).Order("id asc").Find(&bills).Error
	return bills, err
}

// MarkPaid: tek yönlü paid bayrağı; varlık ve sahiplik dışında guard yok.
func MarkPaid(db *gorm.DB, billID, userID uint) (*models.Bill, error) {
	var b models.Bill
	if err := db.First(&b, billID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	var o models.Order
	if err := db.First(&o, b.OrderID).Error; err != nil || o.UserID != userID {
		return nil, ErrNotOwner
	}

	if err := db.Model(&b).Update("paid", true).Error; err != nil {
		return nil, err
	}
	b.Paid = true
	return &b, nil
}
