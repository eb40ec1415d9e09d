package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/resp"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

type DeliveryController struct {
	Deliveries *services.DeliveryService
}

func NewDeliveryController(deliveries *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Deliveries: deliveries}
}

// POST /api/deliveries/assign?orderId=...&deliveryPartnerId=...
func (ctl *DeliveryController) Assign(c *gin.Context) {
	orderID, err1 := strconv.ParseUint(c.Query("orderId"), 10, 64)
	partnerID, err2 := strconv.ParseUint(c.Query("deliveryPartnerId"), 10, 64)
	if err1 != nil || err2 != nil || orderID == 0 || partnerID == 0 {
		resp.BadRequest(c, "orderId and deliveryPartnerId query parameters are required")
		return
	}
	delivery, err := ctl.Deliveries.AssignDelivery(currentCaller(c), uint(orderID), uint(partnerID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}

// PUT /api/deliveries/:id/pickup
func (ctl *DeliveryController) Pickup(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid delivery id")
		return
	}
	delivery, err := ctl.Deliveries.MarkPickedUp(currentCaller(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}

// PUT /api/deliveries/:id/deliver
func (ctl *DeliveryController) Deliver(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid delivery id")
		return
	}
	delivery, err := ctl.Deliveries.MarkDelivered(currentCaller(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, delivery)
}

// GET /api/deliveries/partner
func (ctl *DeliveryController) PartnerDeliveries(c *gin.Context) {
	deliveries, err := ctl.Deliveries.GetPartnerDeliveries(currentCaller(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, deliveries)
}
