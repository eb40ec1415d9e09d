package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/resp"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// POST /api/payments
func (ctl *PaymentController) Process(c *gin.Context) {
	var req services.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	payment, err := ctl.Payments.ProcessPayment(c.Request.Context(), currentCaller(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, payment)
}

// GET /api/payments/order/:orderId
func (ctl *PaymentController) ByOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	payment, err := ctl.Payments.GetPaymentByOrderID(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}

// PATCH /api/payments/:id/status?status=...
func (ctl *PaymentController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	status := c.Query("status")
	if status == "" {
		resp.BadRequest(c, "status query parameter is required")
		return
	}
	payment, err := ctl.Payments.UpdatePaymentStatus(currentCaller(c), id, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}

// POST /api/payments/razorpay/order/:orderId
func (ctl *PaymentController) CreateRazorpayOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	gwOrder, err := ctl.Payments.CreateGatewayOrder(c.Request.Context(), currentCaller(c), orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gwOrder)
}

// POST /api/payments/razorpay/verify/:paymentId?razorpayOrderId=&razorpayPaymentId=&razorpaySignature=
func (ctl *PaymentController) VerifyRazorpayPayment(c *gin.Context) {
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	payment, err := ctl.Payments.VerifyGatewayPayment(
		c.Request.Context(),
		currentCaller(c),
		paymentID,
		c.Query("razorpayOrderId"),
		c.Query("razorpayPaymentId"),
		c.Query("razorpaySignature"),
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payment)
}
