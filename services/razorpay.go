package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

// PaymentGateway is the external payment-provider abstraction. All three
// calls are idempotent from this service's point of view; nothing here
// retries on its own.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount entity.Money, currency string) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	Capture(ctx context.Context, paymentID string, amount entity.Money) (*GatewayCapture, error)
}

type GatewayOrder struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"` // minor units
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	KeyID     string `json:"key_id"`
	CreatedAt int64  `json:"created_at"` // unix seconds
}

type GatewayCapture struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	CapturedAt int64  `json:"captured_at"`
}

// RazorpayGateway is a mock of the Razorpay API. A real integration would
// sign and verify with HMAC-SHA256 over key_secret; the mock accepts
// signatures matching its own derivation rule or any "sig_" value.
type RazorpayGateway struct {
	KeyID     string
	KeySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{KeyID: keyID, KeySecret: keySecret}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount entity.Money, currency string) (*GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = "INR"
	}
	id := "order_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return &GatewayOrder{
		ID:        id,
		Amount:    amount.Paise(),
		Currency:  currency,
		Status:    "created",
		KeyID:     g.KeyID,
		CreatedAt: time.Now().Unix(),
	}, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	expected := mockSignature(orderID, paymentID)
	return signature == expected || strings.HasPrefix(signature, "sig_")
}

func mockSignature(orderID, paymentID string) string {
	o := orderID
	if len(o) > 8 {
		o = o[:8]
	}
	p := paymentID
	if len(p) > 8 {
		p = p[:8]
	}
	return "sig_" + o + p
}

func (g *RazorpayGateway) Capture(ctx context.Context, paymentID string, amount entity.Money) (*GatewayCapture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &GatewayCapture{
		ID:         paymentID,
		Status:     "captured",
		Amount:     amount.Paise(),
		Currency:   "INR",
		CapturedAt: time.Now().Unix(),
	}, nil
}
