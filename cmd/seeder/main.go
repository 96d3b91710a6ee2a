package main

import (
	"log"
	"strconv"

	"github.com/surawits/vibeLink/internal/config"
	"github.com/surawits/vibeLink/internal/database"
	"github.com/surawits/vibeLink/internal/models"
	"github.com/surawits/vibeLink/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

const (
	adminEmail    = "admin@vibelink.local"
	adminPassword = "ChangeMe123!"
	defaultDelay  = 5
)

// Seeds the initial admin user and the default redirect-delay policy row.
// Safe to run repeatedly.
func main() {
	config.LoadConfig()
	database.Connect()

	if err := database.DB.AutoMigrate(&models.User{}, &models.SystemConfig{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var existing models.User
	if err := database.DB.First(&existing, "email = ?", adminEmail).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		admin := models.User{
			ID:           utils.GenerateID(),
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s (change the password on first login)", adminEmail)
	}

	cfg := models.SystemConfig{Key: models.ConfigRedirectDelay, Value: strconv.Itoa(defaultDelay)}
	if err := database.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&cfg).Error; err != nil {
		log.Fatalf("Failed to seed redirect delay config: %v", err)
	}
	log.Println("Seeding complete")
}
