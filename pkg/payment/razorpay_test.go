package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	p := NewRazorpayProvider("", "key", "secret")

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("order_123|pay_456"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, p.VerifySignature("order_123", "pay_456", valid))
	assert.False(t, p.VerifySignature("order_123", "pay_456", "deadbeef"))
	assert.False(t, p.VerifySignature("order_999", "pay_456", valid))
	assert.False(t, p.VerifySignature("order_123", "pay_456", ""))
}

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 49900, body["amount"])
		assert.Equal(t, "INR", body["currency"])

		json.NewEncoder(w).Encode(Order{
			ID:       "order_test1",
			Entity:   "order",
			Amount:   49900,
			Currency: "INR",
			Receipt:  body["receipt"].(string),
			Status:   "created",
		})
	}))
	defer srv.Close()

	p := NewRazorpayProvider(srv.URL, "key_id", "key_secret")
	order, err := p.CreateOrder(context.Background(), OrderRequest{
		AmountCents: 49900,
		Currency:    "INR",
		Receipt:     "rcpt-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_test1", order.ID)
	assert.Equal(t, "rcpt-1", order.Receipt)
	assert.EqualValues(t, 49900, order.Amount)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"bad amount"}}`))
	}))
	defer srv.Close()

	p := NewRazorpayProvider(srv.URL, "k", "s")
	_, err := p.CreateOrder(context.Background(), OrderRequest{AmountCents: -1, Currency: "INR", Receipt: "r"})
	assert.Error(t, err)
}
