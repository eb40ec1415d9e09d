package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ExistsForOrder(tx *gorm.DB, orderID uint) (bool, error) {
	var rev entity.Review
	err := tx.Select("id").Where("order_id = ?", orderID).First(&rev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Aggregate recomputes the mean rating and count from the authoritative
// review rows, never incrementally.
func (r *ReviewRepository) Aggregate(tx *gorm.DB, restaurantID uint) (float64, int64, error) {
	var a struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&entity.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a.Avg, a.Count, err
}

func (r *ReviewRepository) ListForRestaurant(restaurantID uint, page, size int) ([]entity.Review, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Review{}).Where("restaurant_id = ?", restaurantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Limit(size).Offset(page * size).
		Find(&out).Error
	return out, total, err
}
