package services

import (
	"testing"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderPlaced, entity.OrderConfirmed, true},
		{entity.OrderPlaced, entity.OrderCancelled, true},
		{entity.OrderPlaced, entity.OrderPreparing, false},
		{entity.OrderPlaced, entity.OrderDelivered, false},
		{entity.OrderConfirmed, entity.OrderPreparing, true},
		{entity.OrderConfirmed, entity.OrderCancelled, true},
		{entity.OrderConfirmed, entity.OrderReadyForPickup, false},
		{entity.OrderPreparing, entity.OrderReadyForPickup, true},
		{entity.OrderPreparing, entity.OrderCancelled, false},
		{entity.OrderReadyForPickup, entity.OrderOutForDelivery, true},
		{entity.OrderReadyForPickup, entity.OrderCancelled, false},
		{entity.OrderOutForDelivery, entity.OrderDelivered, true},
		{entity.OrderOutForDelivery, entity.OrderCancelled, false},
		{entity.OrderDelivered, entity.OrderCancelled, false},
		{entity.OrderDelivered, entity.OrderPlaced, false},
		{entity.OrderCancelled, entity.OrderConfirmed, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPartnerTransition(t *testing.T) {
	tests := []struct {
		from, to entity.OrderStatus
		want     bool
	}{
		{entity.OrderReadyForPickup, entity.OrderOutForDelivery, true},
		{entity.OrderOutForDelivery, entity.OrderDelivered, true},
		{entity.OrderPlaced, entity.OrderConfirmed, false},
		{entity.OrderConfirmed, entity.OrderPreparing, false},
		{entity.OrderPreparing, entity.OrderReadyForPickup, false},
	}
	for _, tt := range tests {
		if got := partnerTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("partnerTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
