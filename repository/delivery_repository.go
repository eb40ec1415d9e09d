package repository

import (
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

func (r *DeliveryRepository) GetByID(id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) GetForUpdate(tx *gorm.DB, id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := forUpdate(tx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Save(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Save(d).Error
}

// NonTerminalExistsForOrder guards the "at most one live delivery per order"
// rule before a new assignment is created.
func (r *DeliveryRepository) NonTerminalExistsForOrder(tx *gorm.DB, orderID uint) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.Delivery{}).
		Where("order_id = ? AND status <> ?", orderID, entity.DeliveryDelivered).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *DeliveryRepository) ListForPartner(partnerID uint) ([]entity.Delivery, error) {
	var out []entity.Delivery
	err := r.DB.Where("delivery_partner_id = ?", partnerID).
		Order("assigned_at DESC").
		Find(&out).Error
	return out, err
}
