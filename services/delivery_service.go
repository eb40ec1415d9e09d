package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

type DeliveryService struct {
	DB          *gorm.DB
	Deliveries  *repository.DeliveryRepository
	Orders      *repository.OrderRepository
	Users       *repository.UserRepository
	Restaurants *repository.RestaurantRepository
}

func NewDeliveryService(
	db *gorm.DB,
	deliveries *repository.DeliveryRepository,
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	restaurants *repository.RestaurantRepository,
) *DeliveryService {
	return &DeliveryService{
		DB:          db,
		Deliveries:  deliveries,
		Orders:      orders,
		Users:       users,
		Restaurants: restaurants,
	}
}

// AssignDelivery binds a partner to the order. At most one non-terminal
// delivery may exist per order.
func (s *DeliveryService) AssignDelivery(caller Caller, orderID, partnerID uint) (*entity.Delivery, error) {
	var assigned *entity.Delivery
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetForUpdate(tx, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found with id: %d", orderID)
			}
			return err
		}

		if !caller.IsAdmin() {
			owns, err := s.Restaurants.IsOwnedBy(order.RestaurantID, caller.UserID)
			if err != nil {
				return err
			}
			if !owns {
				return apperr.Forbidden("you don't own this order's restaurant")
			}
		}

		partner, err := s.Users.GetByID(partnerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("delivery partner not found")
			}
			return err
		}
		if partner.Role != entity.RoleDeliveryPartner {
			return apperr.BadRequest("user %d is not a delivery partner", partnerID)
		}

		exists, err := s.Deliveries.NonTerminalExistsForOrder(tx, orderID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.BadRequest("order already has an active delivery")
		}

		delivery := &entity.Delivery{
			OrderID:           orderID,
			DeliveryPartnerID: partnerID,
			Status:            entity.DeliveryAssigned,
		}
		if err := s.Deliveries.Create(tx, delivery); err != nil {
			return err
		}

		order.DeliveryPartnerID = &partnerID
		if err := s.Orders.Save(tx, order); err != nil {
			return err
		}

		assigned = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// MarkPickedUp moves the delivery ASSIGNED -> PICKED_UP and advances the
// order to OUT_FOR_DELIVERY when it is ready.
func (s *DeliveryService) MarkPickedUp(caller Caller, deliveryID uint) (*entity.Delivery, error) {
	var picked *entity.Delivery
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		delivery, err := s.Deliveries.GetForUpdate(tx, deliveryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("delivery not found with id: %d", deliveryID)
			}
			return err
		}

		if !caller.IsAdmin() && !caller.IsAssignedPartnerOf(delivery) {
			return apperr.Forbidden("you are not assigned to this delivery")
		}
		if delivery.Status != entity.DeliveryAssigned {
			return apperr.BadRequest("delivery is not awaiting pickup")
		}

		now := time.Now()
		delivery.Status = entity.DeliveryPickedUp
		delivery.PickedUpAt = &now
		if err := s.Deliveries.Save(tx, delivery); err != nil {
			return err
		}

		order, err := s.Orders.GetForUpdate(tx, delivery.OrderID)
		if err != nil {
			return err
		}
		if order.Status == entity.OrderReadyForPickup {
			order.Status = entity.OrderOutForDelivery
			if err := s.Orders.Save(tx, order); err != nil {
				return err
			}
		}

		picked = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}

// MarkDelivered completes the delivery and the order together.
func (s *DeliveryService) MarkDelivered(caller Caller, deliveryID uint) (*entity.Delivery, error) {
	var done *entity.Delivery
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		delivery, err := s.Deliveries.GetForUpdate(tx, deliveryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("delivery not found with id: %d", deliveryID)
			}
			return err
		}

		if !caller.IsAdmin() && !caller.IsAssignedPartnerOf(delivery) {
			return apperr.Forbidden("you are not assigned to this delivery")
		}
		if delivery.Status != entity.DeliveryPickedUp {
			return apperr.BadRequest("delivery has not been picked up")
		}

		now := time.Now()
		delivery.Status = entity.DeliveryDelivered
		delivery.DeliveredAt = &now
		if err := s.Deliveries.Save(tx, delivery); err != nil {
			return err
		}

		order, err := s.Orders.GetForUpdate(tx, delivery.OrderID)
		if err != nil {
			return err
		}
		if !order.Status.Terminal() {
			order.Status = entity.OrderDelivered
			order.ActualDeliveryTime = &now
			if err := s.Orders.Save(tx, order); err != nil {
				return err
			}
		}

		done = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}
	return done, nil
}

func (s *DeliveryService) GetPartnerDeliveries(caller Caller) ([]entity.Delivery, error) {
	return s.Deliveries.ListForPartner(caller.UserID)
}
