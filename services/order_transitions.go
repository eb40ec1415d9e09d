package services

import (
	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

// orderTransitions is the allowed status graph. Terminal states have no
// outgoing edges; CANCELLED is reachable only from PLACED and CONFIRMED.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPlaced:         {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed:      {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing:      {entity.OrderReadyForPickup},
	entity.OrderReadyForPickup: {entity.OrderOutForDelivery},
	entity.OrderOutForDelivery: {entity.OrderDelivered},
}

func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// partnerTransition reports whether the edge is one a delivery partner may
// drive (the final two legs only).
func partnerTransition(from, to entity.OrderStatus) bool {
	return (from == entity.OrderReadyForPickup && to == entity.OrderOutForDelivery) ||
		(from == entity.OrderOutForDelivery && to == entity.OrderDelivered)
}
