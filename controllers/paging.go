package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
	"github.com/Ishan007-bot/Food-Delivery-Backend/utils"
)

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}

func currentCaller(c *gin.Context) services.Caller {
	return services.Caller{UserID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
