package services

import (
	"testing"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
)

func TestSubmitReviewUpdatesAggregate(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)

	first := f.placeTestOrder(t, customer, rest.ID, item.ID)
	second := f.placeTestOrder(t, customer, rest.ID, item.ID)
	f.forceOrderStatus(t, first.ID, entity.OrderDelivered)
	f.forceOrderStatus(t, second.ID, entity.OrderDelivered)

	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{
		OrderID: first.ID,
		Rating:  5,
		Comment: "great",
	}); err != nil {
		t.Fatalf("first review: %v", err)
	}

	var r entity.Restaurant
	f.db.First(&r, rest.ID)
	if r.Rating != 5.0 || r.TotalReviews != 1 {
		t.Errorf("after first review: rating = %v totalReviews = %d, want 5.0 / 1", r.Rating, r.TotalReviews)
	}

	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{
		OrderID: second.ID,
		Rating:  3,
	}); err != nil {
		t.Fatalf("second review: %v", err)
	}

	f.db.First(&r, rest.ID)
	if r.Rating != 4.0 {
		t.Errorf("rating = %v, want 4.0", r.Rating)
	}
	if r.TotalReviews != 2 {
		t.Errorf("totalReviews = %d, want 2", r.TotalReviews)
	}
}

func TestSubmitReviewPreconditions(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	customer := f.createUser(t, entity.RoleCustomer)
	other := f.createUser(t, entity.RoleCustomer)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)
	order := f.placeTestOrder(t, customer, rest.ID, item.ID)

	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: order.ID, Rating: 4}); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("not delivered: err = %v, want BadRequest", err)
	}

	f.forceOrderStatus(t, order.ID, entity.OrderDelivered)

	if _, err := f.reviews.SubmitReview(asCaller(other), &ReviewRequest{OrderID: order.ID, Rating: 4}); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("foreign customer: err = %v, want BadRequest", err)
	}
	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: order.ID, Rating: 0}); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("rating out of range: err = %v, want BadRequest", err)
	}
	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: 99999, Rating: 4}); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("missing order: err = %v, want NotFound", err)
	}

	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: order.ID, Rating: 4}); err != nil {
		t.Fatalf("valid review: %v", err)
	}
	if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: order.ID, Rating: 2}); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("duplicate review: err = %v, want BadRequest", err)
	}

	var count int64
	f.db.Model(&entity.Review{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("review rows = %d, want 1", count)
	}
}

func TestGetRestaurantReviewsPaging(t *testing.T) {
	f := newFixture(t)
	owner := f.createUser(t, entity.RoleRestaurantOwner)
	rest := f.createRestaurant(t, owner.ID)
	item := f.createMenuItem(t, rest.ID, 100.00)

	for i := 0; i < 3; i++ {
		customer := f.createUser(t, entity.RoleCustomer)
		order := f.placeTestOrder(t, customer, rest.ID, item.ID)
		f.forceOrderStatus(t, order.ID, entity.OrderDelivered)
		if _, err := f.reviews.SubmitReview(asCaller(customer), &ReviewRequest{OrderID: order.ID, Rating: 4}); err != nil {
			t.Fatal(err)
		}
	}

	reviews, total, err := f.reviews.GetRestaurantReviews(rest.ID, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(reviews) != 2 {
		t.Errorf("page size = %d, want 2", len(reviews))
	}

	rest2, _, err := f.reviews.GetRestaurantReviews(rest.ID, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest2) != 1 {
		t.Errorf("second page size = %d, want 1", len(rest2))
	}
}
