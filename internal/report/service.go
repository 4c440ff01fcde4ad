package report

import (
	"sort"
	"time"

	"lokanta-backend/internal/models"
	"lokanta-backend/internal/order"

	"gorm.io/gorm"
)

type SalesRow struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"` // kuruş
}

type TrendRow struct {
	Name  string `json:"name"`
	Sold  int    `json:"sold"`
	Stock int    `json:"stock"`
}

type StaffKPIRow struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// Ciroya yalnızca işleme alınmış siparişler girer; new sepette bekleyen demektir.
func processedOrders(db *gorm.DB, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items.MenuItem").Preload("User").
		Where("status <> ? AND created_at >= ?", models.OrderStatusNew, since).
		Find(&orders).Error
	return orders, err
}

// SalesOverTime: son N günün gün bazlı cirosu.
func SalesOverTime(db *gorm.DB, days int, priceMode string) ([]SalesRow, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	orders, err := processedOrders(db, since)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]int64)
	for i := range orders {
		o := &orders[i]
		byDate[o.CreatedAt.Format("2006-01-02")] += order.Total(o, priceMode)
	}

	rows := make([]SalesRow, 0, len(byDate))
	for date, revenue := range byDate {
		rows = append(rows, SalesRow{Date: date, Revenue: revenue})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows, nil
}

// InventoryTrends: son 30 günde en çok satan 10 ürün + güncel stok.
func InventoryTrends(db *gorm.DB) ([]TrendRow, error) {
	since := time.Now().AddDate(0, 0, -30)

	orders, err := processedOrders(db, since)
	if err != nil {
		return nil, err
	}

	type agg struct {
		name  string
		sold  int
		stock int
	}
	byMenu := make(map[uint]*agg)
	for i := range orders {
		for j := range orders[i].Items {
			it := &orders[i].Items[j]
			a, ok := byMenu[it.MenuItemID]
			if !ok {
				a = &agg{name: it.MenuItem.Name, stock: it.MenuItem.Stock}
				byMenu[it.MenuItemID] = a
			}
			a.sold += it.Quantity
		}
	}

	rows := make([]TrendRow, 0, len(byMenu))
	for _, a := range byMenu {
		rows = append(rows, TrendRow{Name: a.name, Sold: a.sold, Stock: a.stock})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Sold > rows[j].Sold })
	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows, nil
}

// StaffKPIs: işleme alınmış sipariş sayısı, kullanıcı bazında.
func StaffKPIs(db *gorm.DB) ([]StaffKPIRow, error) {
	var orders []models.Order
	err := db.Preload("User").
		Where("status <> ?", models.OrderStatusNew).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint]*StaffKPIRow)
	for i := range orders {
		o := &orders[i]
		row, ok := byUser[o.UserID]
		if !ok {
			row = &StaffKPIRow{UserID: o.UserID, Name: o.User.Name}
			byUser[o.UserID] = row
		}
		row.Count++
	}

	rows := make([]StaffKPIRow, 0, len(byUser))
	for _, row := range byUser {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows, nil
}
