package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

type OrderService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Menus       *repository.MenuRepository
	Restaurants *repository.RestaurantRepository

	DeliveryFee entity.Money
	TaxRate     float64
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	menus *repository.MenuRepository,
	restaurants *repository.RestaurantRepository,
	deliveryFee entity.Money,
	taxRate float64,
) *OrderService {
	return &OrderService{
		DB:          db,
		Orders:      orders,
		Menus:       menus,
		Restaurants: restaurants,
		DeliveryFee: deliveryFee,
		TaxRate:     taxRate,
	}
}

type OrderItemRequest struct {
	MenuItemID          uint   `json:"menuItemId" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"specialInstructions"`
}

type PlaceOrderRequest struct {
	RestaurantID        uint               `json:"restaurantId" binding:"required"`
	Items               []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress     string             `json:"deliveryAddress" binding:"required"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// PlaceOrder snapshots menu prices into order lines, bumps each line's menu
// item order_count by one and computes the totals, all in one transaction.
// If any line fails validation nothing persists.
func (s *OrderService) PlaceOrder(caller Caller, req *PlaceOrderRequest) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.BadRequest("order must contain at least one item")
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, apperr.BadRequest("quantity must be at least 1")
		}
	}

	var placed *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.Restaurants.GetActive(tx, req.RestaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("restaurant not found")
			}
			return err
		}

		order := &entity.Order{
			CustomerID:          caller.UserID,
			RestaurantID:        restaurant.ID,
			Status:              entity.OrderPlaced,
			DeliveryFee:         s.DeliveryFee,
			Discount:            0,
			DeliveryAddress:     req.DeliveryAddress,
			SpecialInstructions: req.SpecialInstructions,
		}

		var subtotal entity.Money
		items := make([]entity.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			menuItem, err := s.Menus.GetActiveForUpdate(tx, it.MenuItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("menu item not found: %d", it.MenuItemID)
				}
				return err
			}
			if !menuItem.IsAvailable {
				return apperr.BadRequest("menu item not available: %s", menuItem.Name)
			}

			line := entity.OrderItem{
				MenuItemID:          menuItem.ID,
				ItemName:            menuItem.Name,
				ItemPrice:           menuItem.Price,
				Quantity:            it.Quantity,
				Subtotal:            menuItem.Price * entity.Money(it.Quantity),
				SpecialInstructions: it.SpecialInstructions,
			}
			subtotal += line.Subtotal
			items = append(items, line)

			if err := s.Menus.IncrementOrderCount(tx, menuItem.ID); err != nil {
				return err
			}
		}

		order.Subtotal = subtotal
		order.Tax = entity.TaxOn(subtotal, s.TaxRate)
		order.CalculateTotalAmount()

		eta := time.Now().Add(time.Duration(restaurant.AverageDeliveryTime) * time.Minute)
		order.EstimatedDeliveryTime = &eta

		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := s.Orders.CreateItem(tx, &items[i]); err != nil {
				return err
			}
		}
		order.OrderItems = items
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

func (s *OrderService) GetOrderByID(caller Caller, id uint) (*entity.Order, error) {
	order, err := s.Orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found with id: %d", id)
		}
		return nil, err
	}
	if !caller.IsAdmin() && !caller.IsCustomerOf(order) {
		return nil, apperr.Forbidden("you don't have access to this order")
	}
	return order, nil
}

func (s *OrderService) GetMyOrders(caller Caller, page, size int) ([]entity.Order, int64, error) {
	return s.Orders.ListForCustomer(caller.UserID, page, size)
}

func (s *OrderService) GetRestaurantOrders(caller Caller, restaurantID uint, page, size int) ([]entity.Order, int64, error) {
	restaurant, err := s.Restaurants.GetByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound("restaurant not found")
		}
		return nil, 0, err
	}
	if !caller.IsAdmin() && restaurant.OwnerID != caller.UserID {
		return nil, 0, apperr.Forbidden("you don't have access to this restaurant's orders")
	}
	return s.Orders.ListForRestaurant(restaurantID, page, size)
}

// UpdateOrderStatus advances the order along the transition graph. The row
// is locked and the status re-read before validation so two concurrent
// transitions cannot produce an illegal sequence.
func (s *OrderService) UpdateOrderStatus(caller Caller, id uint, status string) (*entity.Order, error) {
	newStatus, ok := entity.ParseOrderStatus(status)
	if !ok {
		return nil, apperr.BadRequest("invalid order status: %s", status)
	}

	var updated *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found with id: %d", id)
			}
			return err
		}

		if order.Status.Terminal() {
			return apperr.BadRequest("cannot update order in final state")
		}
		if !CanTransition(order.Status, newStatus) {
			return apperr.BadRequest("invalid status transition %s -> %s", order.Status, newStatus)
		}

		if err := s.authorizeTransition(caller, order, newStatus); err != nil {
			return err
		}

		order.Status = newStatus
		if newStatus == entity.OrderDelivered {
			now := time.Now()
			order.ActualDeliveryTime = &now
		}
		if err := s.Orders.Save(tx, order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OrderService) authorizeTransition(caller Caller, order *entity.Order, to entity.OrderStatus) error {
	switch caller.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleRestaurantOwner:
		owns, err := s.Restaurants.IsOwnedBy(order.RestaurantID, caller.UserID)
		if err != nil {
			return err
		}
		if !owns {
			return apperr.Forbidden("you don't own this order's restaurant")
		}
		return nil
	case entity.RoleDeliveryPartner:
		if !partnerTransition(order.Status, to) {
			return apperr.Forbidden("delivery partners may only drive pickup and delivery")
		}
		if order.DeliveryPartnerID == nil || *order.DeliveryPartnerID != caller.UserID {
			return apperr.Forbidden("you are not assigned to this order")
		}
		return nil
	default:
		return apperr.Forbidden("forbidden")
	}
}

func (s *OrderService) CancelOrder(caller Caller, id uint) (*entity.Order, error) {
	var cancelled *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found with id: %d", id)
			}
			return err
		}

		if !caller.IsAdmin() && !caller.IsCustomerOf(order) {
			return apperr.Forbidden("you don't have access to this order")
		}
		if !order.CanBeCancelled() {
			return apperr.BadRequest("order cannot be cancelled at this stage")
		}

		order.Status = entity.OrderCancelled
		if err := s.Orders.Save(tx, order); err != nil {
			return err
		}
		cancelled = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
