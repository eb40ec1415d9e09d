package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/resp"
	"github.com/Ishan007-bot/Food-Delivery-Backend/services"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

// POST /api/reviews
func (ctl *ReviewController) Submit(c *gin.Context) {
	var req services.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := ctl.Reviews.SubmitReview(currentCaller(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/reviews/restaurant/:rid
func (ctl *ReviewController) ListForRestaurant(c *gin.Context) {
	rid, ok := pathID(c, "rid")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	page, size := pageParams(c)
	reviews, total, err := ctl.Reviews.GetRestaurantReviews(rid, page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paged(c, reviews, total, page, size)
}
