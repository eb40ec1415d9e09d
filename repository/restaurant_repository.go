package repository

import (
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// GetActive returns the restaurant only when it is active; placement goes
// through this so inactive restaurants look missing to customers.
func (r *RestaurantRepository) GetActive(tx *gorm.DB, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := tx.Where("id = ? AND is_active = ?", id, true).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ListActive(page, size int) ([]entity.Restaurant, int64, error) {
	var total int64
	q := r.DB.Model(&entity.Restaurant{}).Where("is_active = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := r.DB.Where("is_active = ?", true).
		Order("id").
		Limit(size).Offset(page * size).
		Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) IsOwnedBy(restaurantID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restaurantID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// UpdateRatingAggregate writes the recomputed review aggregate; called
// inside the review-submission transaction.
func (r *RestaurantRepository) UpdateRatingAggregate(tx *gorm.DB, restaurantID uint, rating float64, totalReviews int64) error {
	return tx.Model(&entity.Restaurant{}).
		Where("id = ?", restaurantID).
		Updates(map[string]any{"rating": rating, "total_reviews": totalReviews}).Error
}
