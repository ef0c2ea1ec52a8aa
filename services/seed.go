package services

import (
	"fmt"
	"log"

	"duartecontrol/config"
	"duartecontrol/models"

	"gorm.io/gorm"
)

// EnsureAdminUser seeds the bootstrap admin from ADMIN_EMAIL/ADMIN_PASSWORD
// when the users table is empty, so a fresh installation has exactly one
// account that can log in.
func EnsureAdminUser(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("[WARNING] No users exist and ADMIN_EMAIL/ADMIN_PASSWORD are not set; nobody can log in")
		return nil
	}

	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: hash,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("Seeded bootstrap admin user %s", cfg.AdminEmail)
	return nil
}
