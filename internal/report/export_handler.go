package report

import (
	"fmt"
	"strconv"
	"time"

	"lokanta-backend/internal/config"
	"lokanta-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/reports/sales/export?days=30 (staff/admin)
// Satış raporunu XLSX olarak indirir.
func ExportSalesHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, _ := strconv.Atoi(c.Query("days", "30"))

		rows, err := SalesOverTime(database.DB, days, cfg.PriceMode)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış verileri okunamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		f.SetCellValue(sheet, "A1", "Tarih")
		f.SetCellValue(sheet, "B1", "Ciro (TL)")

		var totalKurus int64
		for i, row := range rows {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.Date)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), float64(row.Revenue)/100)
			totalKurus += row.Revenue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", len(rows)+2), "TOPLAM")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", len(rows)+2), float64(totalKurus)/100)

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası oluşturulamadı")
		}

		filename := fmt.Sprintf("satis-raporu-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	}
}
