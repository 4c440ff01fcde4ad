package shift

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lokanta-backend/internal/models"

	"gorm.io/gorm"
)

type PayrollRow struct {
	StaffID   uint    `json:"staff_id"`
	Name      string  `json:"name"`
	Hours     float64 `json:"hours"`
	Wage      float64 `json:"wage"`
	PayAmount float64 `json:"pay_amount"`
}

// shiftHours: HH:MM - HH:MM arası saat farkı. Gece yarısını aşan vardiya
// ertesi güne taşar kabul edilir.
func shiftHours(start, end string) (float64, error) {
	s, err := parseMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := parseMinutes(end)
	if err != nil {
		return 0, err
	}
	diff := e - s
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60.0, nil
}

func parseMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("geçersiz saat: %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("geçersiz saat: %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("geçersiz saat: %q", hhmm)
	}
	return h*60 + m, nil
}

// ComputePayroll: ay içindeki vardiya saatleri × personel saat ücreti,
// personel bazında toplanmış. month "YYYY-MM" formatında.
func ComputePayroll(db *gorm.DB, month string) ([]PayrollRow, error) {
	var shifts []models.Shift
	if err := db.Preload("Staff").Where("date LIKE ?", month+"%").Find(&shifts).Error; err != nil {
		return nil, err
	}

	byStaff := make(map[uint]*PayrollRow)
	for i := range shifts {
		sh := &shifts[i]
		hours, err := shiftHours(sh.StartTime, sh.EndTime)
		if err != nil {
			return nil, err
		}

		row, ok := byStaff[sh.StaffID]
		if !ok {
			row = &PayrollRow{
				StaffID: sh.StaffID,
				Name:    sh.Staff.Name,
				Wage:    sh.Staff.Wage,
			}
			byStaff[sh.StaffID] = row
		}
		row.Hours += hours
		row.PayAmount += hours * sh.Staff.Wage
	}

	rows := make([]PayrollRow, 0, len(byStaff))
	for _, row := range byStaff {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StaffID < rows[j].StaffID })
	return rows, nil
}
