package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/resp"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /api/orders
func (ctl *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := ctl.Orders.PlaceOrder(currentCaller(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (ctl *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := ctl.Orders.GetOrderByID(currentCaller(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders/my-orders
func (ctl *OrderController) MyOrders(c *gin.Context) {
	page, size := pageParams(c)
	orders, total, err := ctl.Orders.GetMyOrders(currentCaller(c), page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paged(c, orders, total, page, size)
}

// GET /api/orders/restaurant/:rid
func (ctl *OrderController) RestaurantOrders(c *gin.Context) {
	rid, ok := pathID(c, "rid")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	page, size := pageParams(c)
	orders, total, err := ctl.Orders.GetRestaurantOrders(currentCaller(c), rid, page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paged(c, orders, total, page, size)
}

// PATCH /api/orders/:id/status?status=...
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	status := c.Query("status")
	if status == "" {
		resp.BadRequest(c, "status query parameter is required")
		return
	}
	order, err := ctl.Orders.UpdateOrderStatus(currentCaller(c), id, status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /api/orders/:id/cancel
func (ctl *OrderController) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := ctl.Orders.CancelOrder(currentCaller(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
