package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_test_1234567890"

func TestVerifySignatureRoundTrip(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	header := SignPayload(payload, testSecret, now)
	assert.NoError(t, VerifySignature(payload, header, testSecret, now))

	// Tolerans penceresi içinde biraz gecikmiş teslimat da geçerli
	assert.NoError(t, VerifySignature(payload, header, testSecret, now.Add(2*time.Minute)))
}

func TestVerifySignatureTamperedPayload(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	header := SignPayload([]byte(`{"amount":100}`), testSecret, now)

	err := VerifySignature([]byte(`{"amount":999}`), header, testSecret, now)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	header := SignPayload(payload, "whsec_baska", now)

	err := VerifySignature(payload, header, testSecret, now)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestVerifySignatureExpired(t *testing.T) {
	payload := []byte(`{}`)
	signedAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	header := SignPayload(payload, testSecret, signedAt)

	err := VerifySignature(payload, header, testSecret, signedAt.Add(6*time.Minute))
	assert.ErrorIs(t, err, ErrSignatureExpired)

	// Gelecekten gelen imza da reddedilir
	err = VerifySignature(payload, header, testSecret, signedAt.Add(-6*time.Minute))
	assert.ErrorIs(t, err, ErrSignatureExpired)
}

func TestVerifySignatureBadHeader(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Now()

	assert.ErrorIs(t, VerifySignature(payload, "", testSecret, now), ErrBadSignatureHeader)
	assert.ErrorIs(t, VerifySignature(payload, "v1=abc", testSecret, now), ErrBadSignatureHeader)
	assert.ErrorIs(t, VerifySignature(payload, "t=123", testSecret, now), ErrBadSignatureHeader)
	assert.ErrorIs(t, VerifySignature(payload, "t=abc,v1=def", testSecret, now), ErrBadSignatureHeader)

	// Secret yapılandırılmamışsa hiçbir imza kabul edilmez
	header := SignPayload(payload, testSecret, now)
	assert.ErrorIs(t, VerifySignature(payload, header, "", now), ErrBadSignatureHeader)
}
