package loyalty

import (
	"errors"
	"strings"

	"lokanta-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	feedbackPoints = 5 // her geri bildirim için verilen puan
	redeemStep     = 10
	discountPer10  = 50 * 100 // 10 puan başına indirim (kuruş)
)

var (
	ErrMissingGuestCode = errors.New("guestCode eksik")
	ErrBadRating        = errors.New("puan 1 ile 5 arasında olmalı")
	ErrBadRedeemAmount  = errors.New("puanlar 10'un katları halinde kullanılabilir")
	ErrNotEnoughPoints  = errors.New("yeterli puan yok")
)

// AwardFeedback: geri bildirimi kaydeder ve misafir koduna 5 puan yazar.
// Kod ilk kez görülüyorsa sadakat kaydı açılır.
func AwardFeedback(db *gorm.DB, guestCode string, rating int, comment string) (*models.Loyalty, error) {
	if guestCode == "" {
		return nil, ErrMissingGuestCode
	}
	if rating < 1 || rating > 5 {
		return nil, ErrBadRating
	}

	var rec models.Loyalty
	err := db.Transaction(func(tx *gorm.DB) error {
		fb := models.Feedback{
			GuestCode: guestCode,
			Rating:    rating,
			Comment:   comment,
		}
		if err := tx.Create(&fb).Error; err != nil {
			return err
		}

		if err := tx.Where("guest_code = ?", guestCode).First(&rec).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			rec = models.Loyalty{GuestCode: guestCode, Points: feedbackPoints}
			return tx.Create(&rec).Error
		}

		rec.Points += feedbackPoints
		return tx.Model(&rec).Update("points", rec.Points).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetPoints: kod kayıtlı değilse 0 döner.
func GetPoints(db *gorm.DB, guestCode string) (int, error) {
	if guestCode == "" {
		return 0, ErrMissingGuestCode
	}
	var rec models.Loyalty
	if err := db.Where("guest_code = ?", guestCode).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return rec.Points, nil
}

// Redeem: 10'un katları halinde puan bozdurur; 10 puan 50 TL indirim eder.
// İndirim kuruş cinsinden döner.
func Redeem(db *gorm.DB, guestCode string, points int) (discount int64, remaining int, err error) {
	if guestCode == "" {
		return 0, 0, ErrMissingGuestCode
	}
	if points <= 0 || points%redeemStep != 0 {
		return 0, 0, ErrBadRedeemAmount
	}

	var rec models.Loyalty
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_code = ?", guestCode).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnoughPoints
			}
			return err
		}
		if rec.Points < points {
			return ErrNotEnoughPoints
		}
		rec.Points -= points
		return tx.Model(&rec).Update("points", rec.Points).Error
	})
	if err != nil {
		return 0, 0, err
	}

	discount = int64(points/redeemStep) * discountPer10
	return discount, rec.Points, nil
}

// NewGuestCode: 8 karakterlik opak misafir kodu üretir.
func NewGuestCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
