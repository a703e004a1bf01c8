// Package payment implements the Razorpay Orders API client used for
// package purchases: order creation plus capture-signature verification.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vivah/internal/logger"
)

// Provider is the gateway surface the payment handler depends on.
type Provider interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// OrderRequest describes the order to open with the gateway.
type OrderRequest struct {
	AmountCents int64 // smallest currency unit (paise)
	Currency    string
	Receipt     string // our idempotency key
}

// Order is the gateway's order record.
type Order struct {
	ID          string `json:"id"`
	Entity      string `json:"entity"`
	Amount      int64  `json:"amount"`
	AmountPaid  int64  `json:"amount_paid"`
	AmountDue   int64  `json:"amount_due"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

// RazorpayProvider talks to the Razorpay REST API with basic auth.
type RazorpayProvider struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

func NewRazorpayProvider(baseURL, keyID, keySecret string) *RazorpayProvider {
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return &RazorpayProvider{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateOrder opens an order with the gateway.
func (p *RazorpayProvider) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	body := map[string]interface{}{
		"amount":   req.AmountCents,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	bodyBytes, _ := json.Marshal(body)
	apiReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/orders", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}
	apiReq.Header.Set("Content-Type", "application/json")
	apiReq.SetBasicAuth(p.KeyID, p.KeySecret)
	logger.Info("razorpay create order", "receipt", req.Receipt, "amount", req.AmountCents)
	resp, err := p.client.Do(apiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		logger.Error("razorpay order failed", "status", resp.StatusCode, "body", string(respBody))
		return nil, fmt.Errorf("razorpay orders api: %d %s", resp.StatusCode, string(respBody))
	}
	var out Order
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifySignature checks the capture signature: HMAC-SHA256 over
// "order_id|payment_id" keyed with the API secret, hex-encoded.
func (p *RazorpayProvider) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(p.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
