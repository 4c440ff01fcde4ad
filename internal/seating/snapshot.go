package seating

import (
	"time"

	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

type ReservationSummary struct {
	ID        uint   `json:"id"`
	UserID    *uint  `json:"user_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

type TableView struct {
	ID          uint                `json:"id"`
	Number      string              `json:"number"`
	Capacity    int                 `json:"capacity"`
	X           float64             `json:"x"`
	Y           float64             `json:"y"`
	Status      models.TableStatus  `json:"status"`
	Reservation *ReservationSummary `json:"reservation"`
}

// Snapshot: masaların o anki türetilmiş görünümü. Bugüne rezervasyonu olan
// masa kayıtlı durumundan bağımsız reserved görünür; diğerleri kayıtlı
// durumlarıyla döner.
func Snapshot(db *gorm.DB, now time.Time) ([]TableView, error) {
	var tables []models.Table
	if err := db.Order("number asc").Find(&tables).Error; err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")

	var reservations []models.Reservation
	if err := db.Where("date = ?", today).Find(&reservations).Error; err != nil {
		return nil, err
	}

	byTable := make(map[uint]*models.Reservation, len(reservations))
	for i := range reservations {
		byTable[reservations[i].TableID] = &reservations[i]
	}

	views := make([]TableView, 0, len(tables))
	for _, t := range tables {
		view := TableView{
			ID:       t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			X:        t.X,
			Y:        t.Y,
			Status:   t.Status,
		}
		if r, ok := byTable[t.ID]; ok {
			view.Status = models.TableReserved
			view.Reservation = &ReservationSummary{
				ID:        r.ID,
				UserID:    r.UserID,
				Date:      r.Date,
				Time:      r.Time,
				PartySize: r.PartySize,
			}
		}
		views = append(views, view)
	}
	return views, nil
}
