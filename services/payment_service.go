package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

// Gateway calls are bounded; on expiry the payment row is left untouched so
// the client can retry.
const gatewayTimeout = 3 * time.Second

type PaymentService struct {
	DB       *gorm.DB
	Payments *repository.PaymentRepository
	Orders   *repository.OrderRepository
	Gateway  PaymentGateway
}

func NewPaymentService(
	db *gorm.DB,
	payments *repository.PaymentRepository,
	orders *repository.OrderRepository,
	gateway PaymentGateway,
) *PaymentService {
	return &PaymentService{DB: db, Payments: payments, Orders: orders, Gateway: gateway}
}

type PaymentRequest struct {
	OrderID       uint   `json:"orderId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	TransactionID string `json:"transactionId"`
}

// ProcessPayment attaches at most one payment to the order. Dispatch:
// cash-on-delivery stays PENDING; an online method with a transaction id is
// recorded COMPLETED; an online method without one opens a gateway order
// and waits for verification. The gateway call happens before the insert
// transaction so no row lock is held across it.
func (s *PaymentService) ProcessPayment(ctx context.Context, caller Caller, req *PaymentRequest) (*entity.Payment, error) {
	method, ok := entity.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, apperr.BadRequest("invalid payment method: %s", req.PaymentMethod)
	}

	order, err := s.Orders.GetByID(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if !caller.IsAdmin() && !caller.IsCustomerOf(order) {
		return nil, apperr.Forbidden("you don't have access to this order")
	}

	exists, err := s.Payments.ExistsForOrder(s.DB, order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.BadRequest("payment already processed for this order")
	}

	payment := &entity.Payment{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: method,
	}

	switch {
	case method == entity.PaymentCashOnDelivery:
		payment.Status = entity.PaymentPending
	case req.TransactionID != "":
		payment.Status = entity.PaymentCompleted
		payment.TransactionID = req.TransactionID
	default:
		gwCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
		defer cancel()
		gwOrder, err := s.Gateway.CreateOrder(gwCtx, order.TotalAmount, "INR")
		if err != nil {
			return nil, apperr.Gateway("payment gateway order creation failed", err)
		}
		payment.Status = entity.PaymentPending
		payment.TransactionID = gwOrder.ID
		payment.PaymentDetails = "Razorpay Order: " + gwOrder.ID
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// re-check under the transaction; the unique index on order_id is the
		// last line of defence against a concurrent first payment
		exists, err := s.Payments.ExistsForOrder(tx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.BadRequest("payment already processed for this order")
		}
		if err := s.Payments.Create(tx, payment); err != nil {
			return apperr.Conflict("payment already exists for order %d", order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// CreateGatewayOrder is a pure creation call on the gateway; the payment
// row is not touched.
func (s *PaymentService) CreateGatewayOrder(ctx context.Context, caller Caller, orderID uint) (*GatewayOrder, error) {
	order, err := s.Orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	if !caller.IsAdmin() && !caller.IsCustomerOf(order) {
		return nil, apperr.Forbidden("you don't have access to this order")
	}

	gwCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	gwOrder, err := s.Gateway.CreateOrder(gwCtx, order.TotalAmount, "INR")
	if err != nil {
		return nil, apperr.Gateway("payment gateway order creation failed", err)
	}
	return gwOrder, nil
}

// VerifyGatewayPayment checks the gateway signature, captures the funds and
// completes the payment. Re-verification of an already completed payment
// with the same gateway payment id is a no-op.
func (s *PaymentService) VerifyGatewayPayment(ctx context.Context, caller Caller, paymentID uint, gwOrderID, gwPaymentID, signature string) (*entity.Payment, error) {
	payment, err := s.Payments.GetByID(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}

	if payment.Status == entity.PaymentCompleted {
		if payment.TransactionID == gwPaymentID {
			return payment, nil
		}
		return nil, apperr.BadRequest("payment already completed with a different transaction")
	}

	if !s.Gateway.VerifySignature(gwOrderID, gwPaymentID, signature) {
		return nil, apperr.BadRequest("invalid payment signature")
	}

	gwCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	capture, err := s.Gateway.Capture(gwCtx, gwPaymentID, payment.Amount)
	if err != nil {
		return nil, apperr.Gateway("payment capture failed", err)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := s.Payments.GetForUpdate(tx, paymentID)
		if err != nil {
			return err
		}
		locked.Status = entity.PaymentCompleted
		locked.TransactionID = gwPaymentID
		locked.PaymentDetails = "Razorpay Payment Verified: " + capture.ID
		if err := s.Payments.Save(tx, locked); err != nil {
			return err
		}
		payment = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePaymentStatus is the admin-only forced transition.
func (s *PaymentService) UpdatePaymentStatus(caller Caller, paymentID uint, status string) (*entity.Payment, error) {
	if !caller.IsAdmin() {
		return nil, apperr.Forbidden("only admins may force payment status")
	}
	newStatus, ok := entity.ParsePaymentStatus(status)
	if !ok {
		return nil, apperr.BadRequest("invalid payment status: %s", status)
	}

	var updated *entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		payment, err := s.Payments.GetForUpdate(tx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("payment not found")
			}
			return err
		}
		payment.Status = newStatus
		if err := s.Payments.Save(tx, payment); err != nil {
			return err
		}
		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *PaymentService) GetPaymentByOrderID(orderID uint) (*entity.Payment, error) {
	payment, err := s.Payments.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found for order")
		}
		return nil, err
	}
	return payment, nil
}
