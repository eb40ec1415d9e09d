package repository

import (
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForUpdate locks the order row; every status transition re-reads status
// under this lock before validating against the graph.
func (r *OrderRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := forUpdate(tx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

func (r *OrderRepository) ListForCustomer(customerID uint, page, size int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("customer_id = ?", customerID).
		Order("ordered_at DESC").
		Limit(size).Offset(page * size).
		Find(&out).Error
	return out, total, err
}

func (r *OrderRepository) ListForRestaurant(restaurantID uint, page, size int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restaurantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := r.DB.Preload("OrderItems").
		Where("restaurant_id = ?", restaurantID).
		Order("ordered_at DESC").
		Limit(size).Offset(page * size).
		Find(&out).Error
	return out, total, err
}
