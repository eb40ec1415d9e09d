package repository

import (
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetActiveForUpdate locks the row so concurrent placements observe a
// consistent order_count.
func (r *MenuRepository) GetActiveForUpdate(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := forUpdate(tx).Where("id = ? AND is_active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// IncrementOrderCount bumps order_count by one, once per order line.
func (r *MenuRepository) IncrementOrderCount(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ?", id).
		UpdateColumn("order_count", gorm.Expr("order_count + 1")).Error
}

func (r *MenuRepository) ListAvailableForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_active = ? AND is_available = ?", restaurantID, true, true).
		Order("id").
		Find(&out).Error
	return out, err
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}
