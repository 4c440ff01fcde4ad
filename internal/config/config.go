package config

import (
	"log"
	"os"
)

// PriceMode: sipariş kalemlerinin fiyatının nereden okunacağı.
// "live": menüdeki güncel fiyat (varsayılan, eski davranış).
// "snapshot": sipariş anında kaydedilen birim fiyat.
const (
	PriceModeLive     = "live"
	PriceModeSnapshot = "snapshot"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	PriceMode   string

	// Ödeme sağlayıcısı (create-intent / webhook sözleşmesi)
	PaymentGatewayURL    string
	PaymentGatewayKey    string
	PaymentWebhookSecret string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:          getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=lokanta port=5432 sslmode=disable"),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		CORSOrigins:          getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		PriceMode:            getEnv("PRICE_MODE", PriceModeLive),
		PaymentGatewayURL:    getEnv("PAYMENT_GATEWAY_URL", ""),
		PaymentGatewayKey:    getEnv("PAYMENT_GATEWAY_KEY", ""),
		PaymentWebhookSecret: getEnv("PAYMENT_WEBHOOK_SECRET", ""),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.PriceMode != PriceModeLive && cfg.PriceMode != PriceModeSnapshot {
		log.Fatalf("[FATAL] PRICE_MODE geçersiz: %q (live veya snapshot olmalı)", cfg.PriceMode)
	}
	if cfg.PaymentWebhookSecret == "" {
		log.Println("[WARN] PAYMENT_WEBHOOK_SECRET tanımlı değil, ödeme webhook'ları reddedilecek.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
