package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

type ReviewService struct {
	DB          *gorm.DB
	Reviews     *repository.ReviewRepository
	Orders      *repository.OrderRepository
	Restaurants *repository.RestaurantRepository
}

func NewReviewService(
	db *gorm.DB,
	reviews *repository.ReviewRepository,
	orders *repository.OrderRepository,
	restaurants *repository.RestaurantRepository,
) *ReviewService {
	return &ReviewService{DB: db, Reviews: reviews, Orders: orders, Restaurants: restaurants}
}

type ReviewRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SubmitReview inserts the review and recomputes the restaurant's rating
// aggregate from the review rows, in one transaction. Preconditions are
// checked in order: ownership, delivered, not yet reviewed.
func (s *ReviewService) SubmitReview(caller Caller, req *ReviewRequest) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.BadRequest("rating must be between 1 and 5")
	}

	var submitted *entity.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.GetForUpdate(tx, req.OrderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order not found")
			}
			return err
		}

		if order.CustomerID != caller.UserID {
			return apperr.BadRequest("you can only review your own orders")
		}
		if order.Status != entity.OrderDelivered {
			return apperr.BadRequest("you can only review delivered orders")
		}

		exists, err := s.Reviews.ExistsForOrder(tx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.BadRequest("you have already reviewed this order")
		}

		review := &entity.Review{
			RestaurantID: order.RestaurantID,
			CustomerID:   caller.UserID,
			OrderID:      order.ID,
			Rating:       req.Rating,
			Comment:      req.Comment,
		}
		if err := s.Reviews.Create(tx, review); err != nil {
			return apperr.Conflict("review already exists for order %d", order.ID)
		}

		avg, count, err := s.Reviews.Aggregate(tx, order.RestaurantID)
		if err != nil {
			return err
		}
		if err := s.Restaurants.UpdateRatingAggregate(tx, order.RestaurantID, avg, count); err != nil {
			return err
		}

		submitted = review
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submitted, nil
}

func (s *ReviewService) GetRestaurantReviews(restaurantID uint, page, size int) ([]entity.Review, int64, error) {
	return s.Reviews.ListForRestaurant(restaurantID, page, size)
}
