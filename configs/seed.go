package configs

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ishan007-bot/Food-Delivery-Backend/entity"
)

// SeedAdmin makes sure an ADMIN account exists so payment-status overrides
// and restaurant moderation work on a fresh database.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	var existing entity.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		FullName: "Administrator",
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin user %s", cfg.AdminEmail)
	return nil
}
