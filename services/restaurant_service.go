package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

type RestaurantService struct {
	Restaurants *repository.RestaurantRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants}
}

type CreateRestaurantRequest struct {
	Name                string `json:"name" binding:"required"`
	Description         string `json:"description"`
	Address             string `json:"address" binding:"required"`
	CuisineType         string `json:"cuisineType"`
	AverageDeliveryTime int    `json:"averageDeliveryTime"`
}

func (s *RestaurantService) Create(caller Caller, req *CreateRestaurantRequest) (*entity.Restaurant, error) {
	avgTime := req.AverageDeliveryTime
	if avgTime <= 0 {
		avgTime = 30
	}
	restaurant := &entity.Restaurant{
		Name:                req.Name,
		Description:         req.Description,
		Address:             req.Address,
		CuisineType:         req.CuisineType,
		OwnerID:             caller.UserID,
		AverageDeliveryTime: avgTime,
		IsActive:            true,
	}
	if err := s.Restaurants.Create(restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (s *RestaurantService) List(page, size int) ([]entity.Restaurant, int64, error) {
	return s.Restaurants.ListActive(page, size)
}

func (s *RestaurantService) GetByID(id uint) (*entity.Restaurant, error) {
	restaurant, err := s.Restaurants.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	return restaurant, nil
}
