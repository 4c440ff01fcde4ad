package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// İmza başlığı "t=<unix>,v1=<hex>" formatındadır; v1, secret ile
// "<t>.<gövde>" üzerinden hesaplanan HMAC-SHA256'dır.
const signatureTolerance = 5 * time.Minute

var (
	ErrBadSignatureHeader = errors.New("imza başlığı çözümlenemedi")
	ErrSignatureMismatch  = errors.New("webhook imzası doğrulanamadı")
	ErrSignatureExpired   = errors.New("webhook imzası çok eski")
)

func VerifySignature(payload []byte, header, secret string, now time.Time) error {
	if secret == "" || header == "" {
		return ErrBadSignatureHeader
	}

	var tsStr, sig string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			tsStr = kv[1]
		case "v1":
			sig = kv[1]
		}
	}
	if tsStr == "" || sig == "" {
		return ErrBadSignatureHeader
	}

	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return ErrBadSignatureHeader
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrSignatureExpired
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", tsStr, payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return ErrSignatureMismatch
	}
	return nil
}

// SignPayload: test ve sağlayıcı simülasyonu için imza başlığı üretir.
func SignPayload(payload []byte, secret string, now time.Time) string {
	tsStr := strconv.FormatInt(now.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", tsStr, payload)
	return fmt.Sprintf("t=%s,v1=%s", tsStr, hex.EncodeToString(mac.Sum(nil)))
}
