package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/resp"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
	Menus       *services.MenuService
}

func NewRestaurantController(restaurants *services.RestaurantService, menus *services.MenuService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, Menus: menus}
}

// POST /api/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	restaurant, err := ctl.Restaurants.Create(currentCaller(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, restaurant)
}

// GET /api/restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	page, size := pageParams(c)
	restaurants, total, err := ctl.Restaurants.List(page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paged(c, restaurants, total, page, size)
}

// GET /api/restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	restaurant, err := ctl.Restaurants.GetByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// POST /api/restaurants/:id/menu-items
func (ctl *RestaurantController) CreateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menus.Create(currentCaller(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /api/restaurants/:id/menu-items
func (ctl *RestaurantController) ListMenuItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	items, err := ctl.Menus.ListForRestaurant(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PATCH /api/menu-items/:id
func (ctl *RestaurantController) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req services.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := ctl.Menus.Update(currentCaller(c), id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}
