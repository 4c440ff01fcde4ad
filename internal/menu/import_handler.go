package menu

import (
	"log"
	"strconv"
	"strings"

	"lokanta-backend/internal/database"
	"lokanta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// POST /api/menu/import (sadece admin)
// XLSX'ten toplu menü yükler. Beklenen kolonlar: isim, kategori, fiyat, stok.
// Aynı isimli ürün varsa fiyat/stok güncellenir, yoksa yeni kayıt açılır.
func ImportMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		// İlk satır başlık mı?
		startRow := 0
		if len(rows[0]) > 0 {
			firstCell := strings.ToUpper(strings.TrimSpace(rows[0][0]))
			if strings.Contains(firstCell, "ÜRÜN") || strings.Contains(firstCell, "İSİM") ||
				strings.Contains(firstCell, "NAME") || strings.Contains(firstCell, "PRODUCT") {
				startRow = 1
			}
		}

		createdCount := 0
		updatedCount := 0
		skipped := []int{}

		for i := startRow; i < len(rows); i++ {
			row := rows[i]
			if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
				continue
			}

			name := strings.TrimSpace(row[0])
			category := strings.TrimSpace(row[1])
			price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(row[2]), ",", "."), 64)
			if err != nil || price < 0 {
				skipped = append(skipped, i+1)
				continue
			}

			stock := 0
			if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
				stock, err = strconv.Atoi(strings.TrimSpace(row[3]))
				if err != nil || stock < 0 {
					skipped = append(skipped, i+1)
					continue
				}
			}

			var existing models.MenuItem
			if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
				existing.Category = category
				existing.Price = price
				existing.Stock = stock
				if err := database.DB.Save(&existing).Error; err != nil {
					log.Printf("menü import: %q güncellenemedi: %v", name, err)
					skipped = append(skipped, i+1)
					continue
				}
				updatedCount++
				continue
			}

			m := models.MenuItem{
				Name:      name,
				Category:  category,
				Price:     price,
				Available: true,
				Stock:     stock,
			}
			if err := database.DB.Create(&m).Error; err != nil {
				log.Printf("menü import: %q oluşturulamadı: %v", name, err)
				skipped = append(skipped, i+1)
				continue
			}
			createdCount++
		}

		return c.JSON(fiber.Map{
			"created":      createdCount,
			"updated":      updatedCount,
			"skipped_rows": skipped,
		})
	}
}
