package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
	"github.com/Ishan007-bot/Food-Delivery-Backend/repository"
)

type MenuService struct {
	Menus       *repository.MenuRepository
	Restaurants *repository.RestaurantRepository
}

func NewMenuService(menus *repository.MenuRepository, restaurants *repository.RestaurantRepository) *MenuService {
	return &MenuService{Menus: menus, Restaurants: restaurants}
}

type CreateMenuItemRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       entity.Money `json:"price" binding:"required"`
	Category    string       `json:"category"`
}

type UpdateMenuItemRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *entity.Money `json:"price"`
	Category    *string       `json:"category"`
	IsAvailable *bool         `json:"isAvailable"`
	IsActive    *bool         `json:"isActive"`
}

func (s *MenuService) requireOwnership(caller Caller, restaurantID uint) error {
	if caller.IsAdmin() {
		return nil
	}
	owns, err := s.Restaurants.IsOwnedBy(restaurantID, caller.UserID)
	if err != nil {
		return err
	}
	if !owns {
		return apperr.Forbidden("you don't own this restaurant")
	}
	return nil
}

func (s *MenuService) Create(caller Caller, restaurantID uint, req *CreateMenuItemRequest) (*entity.MenuItem, error) {
	if _, err := s.Restaurants.GetByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	if err := s.requireOwnership(caller, restaurantID); err != nil {
		return nil, err
	}
	if req.Price <= 0 {
		return nil, apperr.BadRequest("price must be positive")
	}

	item := &entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		RestaurantID: restaurantID,
		IsAvailable:  true,
		IsActive:     true,
	}
	if err := s.Menus.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) ListForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Menus.ListAvailableForRestaurant(restaurantID)
}

func (s *MenuService) Update(caller Caller, id uint, req *UpdateMenuItemRequest) (*entity.MenuItem, error) {
	item, err := s.Menus.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	if err := s.requireOwnership(caller, item.RestaurantID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperr.BadRequest("price must be positive")
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.Menus.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}
