package services

import (
	"testing"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
)

func TestDeliveryLifecycle(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	partner := f.createUser(t, entity.RoleDeliveryPartner)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)
	order := f.placeTestOrder(t, customer, rest.ID, item.ID)
	f.forceOrderStatus(t, order.ID, entity.OrderReadyForPickup)

	delivery, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, partner.ID)
	if err != nil {
		t.Fatalf("AssignDelivery: %v", err)
	}
	if delivery.Status != entity.DeliveryAssigned {
		t.Errorf("status = %s, want ASSIGNED", delivery.Status)
	}
	var o entity.Order
	f.db.First(&o, order.ID)
	if o.DeliveryPartnerID == nil || *o.DeliveryPartnerID != partner.ID {
		t.Error("order.deliveryPartnerId not set by assignment")
	}

	picked, err := f.deliveries.MarkPickedUp(asCaller(partner), delivery.ID)
	if err != nil {
		t.Fatalf("MarkPickedUp: %v", err)
	}
	if picked.Status != entity.DeliveryPickedUp || picked.PickedUpAt == nil {
		t.Errorf("pickup state = %s / %v", picked.Status, picked.PickedUpAt)
	}
	f.db.First(&o, order.ID)
	if o.Status != entity.OrderOutForDelivery {
		t.Errorf("order status after pickup = %s, want OUT_FOR_DELIVERY", o.Status)
	}

	done, err := f.deliveries.MarkDelivered(asCaller(partner), delivery.ID)
	if err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}
	if done.Status != entity.DeliveryDelivered || done.DeliveredAt == nil {
		t.Errorf("delivered state = %s / %v", done.Status, done.DeliveredAt)
	}
	if done.PickedUpAt.After(*done.DeliveredAt) {
		t.Error("pickedUpAt after deliveredAt")
	}
	if done.AssignedAt.After(*done.PickedUpAt) {
		t.Error("assignedAt after pickedUpAt")
	}

	f.db.First(&o, order.ID)
	if o.Status != entity.OrderDelivered {
		t.Errorf("order status after delivery = %s, want DELIVERED", o.Status)
	}
	if o.ActualDeliveryTime == nil {
		t.Error("actualDeliveryTime not set")
	}
}

func TestAssignDeliveryGuards(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	foreign := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	partner := f.createUser(t, entity.RoleDeliveryPartner)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)
	order := f.placeTestOrder(t, customer, rest.ID, item.ID)

	if _, err := f.deliveries.AssignDelivery(asCaller(owner), 99999, partner.ID); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("missing order: err = %v, want NotFound", err)
	}
	if _, err := f.deliveries.AssignDelivery(asCaller(foreign), order.ID, partner.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("foreign owner: err = %v, want Forbidden", err)
	}
	if _, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, customer.ID); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("non-partner assignee: err = %v, want BadRequest", err)
	}

	if _, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, partner.ID); err != nil {
		t.Fatalf("first assignment: %v", err)
	}
	// at most one non-terminal delivery per order
	if _, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, partner.ID); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("duplicate assignment: err = %v, want BadRequest", err)
	}

	var count int64
	f.db.Model(&entity.Delivery{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("delivery rows = %d, want 1", count)
	}
}

func TestPickupAndDeliverGuards(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	partner := f.createUser(t, entity.RoleDeliveryPartner)
	stranger := f.createUser(t, entity.RoleDeliveryPartner)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)
	order := f.placeTestOrder(t, customer, rest.ID, item.ID)
	f.forceOrderStatus(t, order.ID, entity.OrderReadyForPickup)

	delivery, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, partner.ID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.deliveries.MarkDelivered(asCaller(partner), delivery.ID); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("deliver before pickup: err = %v, want BadRequest", err)
	}
	if _, err := f.deliveries.MarkPickedUp(asCaller(stranger), delivery.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("stranger pickup: err = %v, want Forbidden", err)
	}

	if _, err := f.deliveries.MarkPickedUp(asCaller(partner), delivery.ID); err != nil {
		t.Fatalf("pickup: %v", err)
	}
	if _, err := f.deliveries.MarkPickedUp(asCaller(partner), delivery.ID); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("double pickup: err = %v, want BadRequest", err)
	}
	if _, err := f.deliveries.MarkDelivered(asCaller(stranger), delivery.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Errorf("stranger deliver: err = %v, want Forbidden", err)
	}
}

func TestGetPartnerDeliveries(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	partner := f.createUser(t, entity.RoleDeliveryPartner)
	idle := f.createUser(t, entity.RoleDeliveryPartner)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)
	order := f.placeTestOrder(t, customer, rest.ID, item.ID)

	if _, err := f.deliveries.AssignDelivery(asCaller(owner), order.ID, partner.ID); err != nil {
		t.Fatal(err)
	}

	mine, err := f.deliveries.GetPartnerDeliveries(asCaller(partner))
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 {
		t.Errorf("partner deliveries = %d, want 1", len(mine))
	}
	none, err := f.deliveries.GetPartnerDeliveries(asCaller(idle))
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("idle partner deliveries = %d, want 0", len(none))
	}
}
