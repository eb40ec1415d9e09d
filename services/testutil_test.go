package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

var testDBSeq int64

// fixture wires every service against a fresh in-memory database.
type fixture struct {
	db *gorm.DB

	orders     *OrderService
	deliveries *DeliveryService
	payments   *PaymentService
	reviews    *ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Delivery{},
		&entity.Payment{},
		&entity.Review{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	return &fixture{
		db: db,
		orders: NewOrderService(db, orderRepo, menuRepo, restRepo,
			entity.MoneyFromFloat(50.0), 0.05),
		deliveries: NewDeliveryService(db, deliveryRepo, orderRepo, userRepo, restRepo),
		payments:   NewPaymentService(db, paymentRepo, orderRepo, NewRazorpayGateway("rzp_test_mock_key", "rzp_test_mock_secret")),
		reviews:    NewReviewService(db, reviewRepo, orderRepo, restRepo),
	}
}

func (f *fixture) createUser(t *testing.T, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("user%d-%s@test.local", atomic.AddInt64(&testDBSeq, 1), role),
		Password: "x",
		FullName: "Test User",
		Role:     role,
		IsActive: true,
	}
	if err := f.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *fixture) createRestaurant(t *testing.T, ownerID uint) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:                "Test Kitchen",
		Address:             "1 Test Street",
		OwnerID:             ownerID,
		AverageDeliveryTime: 30,
		IsActive:            true,
	}
	if err := f.db.Create(r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return r
}

func (f *fixture) createMenuItem(t *testing.T, restaurantID uint, price float64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		Name:         "Paneer Tikka",
		Price:        entity.MoneyFromFloat(price),
		RestaurantID: restaurantID,
		IsAvailable:  true,
		IsActive:     true,
	}
	if err := f.db.Create(m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return m
}

func asCaller(u *entity.User) Caller {
	return Caller{UserID: u.ID, Role: u.Role}
}

// placeTestOrder creates a PLACED order for customer at restaurant with one
// line of the given menu item.
func (f *fixture) placeTestOrder(t *testing.T, customer *entity.User, restaurantID, menuItemID uint) *entity.Order {
	t.Helper()
	order, err := f.orders.PlaceOrder(asCaller(customer), &PlaceOrderRequest{
		RestaurantID:    restaurantID,
		Items:           []OrderItemRequest{{MenuItemID: menuItemID, Quantity: 2}},
		DeliveryAddress: "A",
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

// forceOrderStatus drives the row directly; used to set up mid-lifecycle
// states without replaying the whole flow.
func (f *fixture) forceOrderStatus(t *testing.T, orderID uint, status entity.OrderStatus) {
	t.Helper()
	if err := f.db.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error; err != nil {
		t.Fatalf("force order status: %v", err)
	}
}
