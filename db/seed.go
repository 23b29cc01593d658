package db

import (
	"errors"
	"log"
	"os"

	"github.com/userhub-dev/userhub/internal/auth"
	"github.com/userhub-dev/userhub/internal/models"
	"gorm.io/gorm"
)

const seedUserEmail = "api-explorer@example.com"

// SeedDefaultUser ensures the API-explorer account exists so the service is
// usable right after first boot. Idempotent: an existing account only gets
// its password re-hashed to match the current environment.
func SeedDefaultUser(hasher auth.PasswordHasher) error {
	password := os.Getenv("SEED_USER_PASSWORD")

	if password == "" {
		password = "explorer123"
		log.Println("SEED_USER_PASSWORD not set, using default password")
	}

	passwordHash, err := hasher.Hash(password)

	if err != nil {
		return err
	}

	var user models.User

	err = DB.Where("email = ?", seedUserEmail).First(&user).Error

	if err == nil {
		user.Password = passwordHash
		if err := DB.Save(&user).Error; err != nil {
			return err
		}
		log.Printf("Updated seed user password for: %s", seedUserEmail)
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user = models.User{
		Email:    seedUserEmail,
		Password: passwordHash,
		Name:     "API Explorer",
	}

	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("Created seed user: %s", seedUserEmail)

	return nil
}
