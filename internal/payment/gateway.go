package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lokanta-backend/internal/config"
)

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Gateway: ödeme sağlayıcısının create-intent tarafı. Sağlayıcı opak bir
// servistir; sözleşme intent oluşturma + webhook geri çağrısından ibarettir.
type Gateway interface {
	CreateIntent(amount int64, currency string, orderID uint) (*Intent, error)
}

type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGateway(cfg *config.Config) *HTTPGateway {
	return &HTTPGateway{
		baseURL: cfg.PaymentGatewayURL,
		apiKey:  cfg.PaymentGatewayKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *HTTPGateway) CreateIntent(amount int64, currency string, orderID uint) (*Intent, error) {
	if g.baseURL == "" {
		return nil, fmt.Errorf("ödeme sağlayıcısı yapılandırılmamış")
	}

	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"metadata": map[string]string{
			"order_id": fmt.Sprint(orderID),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("HTTP isteği oluşturulamadı: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ödeme sağlayıcısına ulaşılamadı: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("ödeme sağlayıcısı hatası: %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("sağlayıcı yanıtı çözümlenemedi: %v", err)
	}
	return &intent, nil
}
