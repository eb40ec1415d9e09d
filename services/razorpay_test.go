package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

func TestRazorpayCreateOrder(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_mock_key", "secret")

	order, err := g.CreateOrder(context.Background(), entity.MoneyFromFloat(470.00), "")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if !strings.HasPrefix(order.ID, "order_") {
		t.Errorf("id = %q, want order_ prefix", order.ID)
	}
	if len(order.ID) != len("order_")+32 {
		t.Errorf("id = %q, want 32 hex chars after prefix", order.ID)
	}
	if order.Amount != 47000 {
		t.Errorf("amount = %d, want 47000 minor units", order.Amount)
	}
	if order.Currency != "INR" {
		t.Errorf("currency = %q, want INR default", order.Currency)
	}
	if order.Status != "created" {
		t.Errorf("status = %q, want created", order.Status)
	}
	if order.KeyID != "rzp_test_mock_key" {
		t.Errorf("keyId = %q", order.KeyID)
	}
	if order.CreatedAt == 0 || order.CreatedAt > time.Now().Unix() {
		t.Errorf("createdAt = %d", order.CreatedAt)
	}
}

func TestRazorpayVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("key", "secret")

	tests := []struct {
		name                         string
		orderID, paymentID, signature string
		want                         bool
	}{
		{"derived signature", "order_abc12345xyz", "pay_98765432xyz", "sig_" + "order_ab" + "pay_9876", true},
		{"any sig_ prefixed value", "order_abc", "pay_1", "sig_whatever", true},
		{"short ids", "o1", "p1", "sig_o1p1", true},
		{"wrong signature", "order_abc", "pay_1", "nope", false},
		{"empty order id", "", "pay_1", "sig_x", false},
		{"empty payment id", "order_abc", "", "sig_x", false},
		{"empty signature", "order_abc", "pay_1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.VerifySignature(tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("VerifySignature(%q, %q, %q) = %v, want %v",
					tt.orderID, tt.paymentID, tt.signature, got, tt.want)
			}
		})
	}
}

func TestRazorpayCapture(t *testing.T) {
	g := NewRazorpayGateway("key", "secret")

	capture, err := g.Capture(context.Background(), "pay_42", entity.MoneyFromFloat(100.00))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if capture.ID != "pay_42" {
		t.Errorf("id = %q, want pay_42", capture.ID)
	}
	if capture.Status != "captured" {
		t.Errorf("status = %q, want captured", capture.Status)
	}
	if capture.Amount != 10000 {
		t.Errorf("amount = %d, want 10000 minor units", capture.Amount)
	}
}

func TestRazorpayHonoursCancelledContext(t *testing.T) {
	g := NewRazorpayGateway("key", "secret")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.CreateOrder(ctx, entity.MoneyFromFloat(1), "INR"); err == nil {
		t.Error("CreateOrder: want error on cancelled context")
	}
	if _, err := g.Capture(ctx, "pay_1", entity.MoneyFromFloat(1)); err == nil {
		t.Error("Capture: want error on cancelled context")
	}
}
