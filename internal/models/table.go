package models

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
	TableOccupied  TableStatus = "occupied"
)

func (s TableStatus) Valid() bool {
	return s == TableAvailable || s == TableReserved || s == TableOccupied
}

// Table: salon planındaki bir masa. X/Y kat planı çizimi için yüzde konumu.
type Table struct {
	ID       uint    `gorm:"primaryKey"`
	Number   string  `gorm:"size:20;not null;unique"`
	Capacity int     `gorm:"not null;default:4"`
	X        float64 `gorm:"not null"`
	Y        float64 `gorm:"not null"`
	// Kayıtlı durum; aynı güne rezervasyon varsa okuma sırasında reserved'a çevrilir.
	Status TableStatus `gorm:"size:20;not null;default:available"`
}
