package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/skillstream/lms-backend/internal/domain"
)

// HTTPVerifier confirms a payment reference against the provider's confirm
// endpoint. Single POST, no retries; a non-2xx response fails the order.
type HTTPVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPVerifier(baseURL, apiKey string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPVerifier) Confirm(ctx context.Context, info domain.PaymentInfo) error {
	body, err := json.Marshal(map[string]string{
		"provider":   info.Provider,
		"payment_id": info.PaymentID,
		"status":     info.Status,
	})
	if err != nil {
		return fmt.Errorf("marshal payment confirm: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/v1/confirm", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build payment confirm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	res, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("payment confirm request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("payment confirm rejected: status %d", res.StatusCode)
	}
	return nil
}

// NoopVerifier accepts every payment reference. Used in development where
// no gateway is reachable.
type NoopVerifier struct{}

func (NoopVerifier) Confirm(context.Context, domain.PaymentInfo) error { return nil }
