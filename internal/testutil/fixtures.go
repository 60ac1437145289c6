package testutil

import (
	"testing"
	"time"

	"carlookup/internal/models"
	"carlookup/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTestMake inserts a car make and returns it.
func CreateTestMake(t *testing.T, db *gorm.DB, name, country string) models.CarMake {
	carMake := models.CarMake{
		MakeID:          uuid.New(),
		Name:            name,
		CountryOfOrigin: country,
	}
	if err := db.Create(&carMake).Error; err != nil {
		t.Fatalf("Failed to create test car make %q: %v", name, err)
	}
	return carMake
}

// CreateTestModel inserts a car model under the given make and returns it.
func CreateTestModel(t *testing.T, db *gorm.DB, makeID uuid.UUID, name string, year int) models.CarModel {
	model := models.CarModel{
		ModelID:   uuid.New(),
		MakeID:    makeID,
		Name:      name,
		ModelYear: year,
	}
	if err := db.Create(&model).Error; err != nil {
		t.Fatalf("Failed to create test car model %q: %v", name, err)
	}
	return model
}

// CreateTestRole inserts a role and returns it.
func CreateTestRole(t *testing.T, db *gorm.DB, name string) models.Role {
	role := models.Role{
		RoleID: uuid.New(),
		Name:   name,
	}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("Failed to create test role %q: %v", name, err)
	}
	return role
}

// CreateTestUser inserts an active user with a hashed password and the given
// roles (roles are created on the fly).
func CreateTestUser(t *testing.T, db *gorm.DB, username, password string, roleNames ...string) models.User {
	salt, err := utils.GenerateSalt()
	if err != nil {
		t.Fatalf("Failed to generate salt: %v", err)
	}
	hash, err := utils.HashPassword(password, salt)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		UserID:       uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user %q: %v", username, err)
	}

	for _, roleName := range roleNames {
		var role models.Role
		if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
			role = CreateTestRole(t, db, roleName)
		}
		ur := models.UserRole{
			UserID:     user.UserID,
			RoleID:     role.RoleID,
			AssignedAt: time.Now().UTC(),
		}
		if err := db.Create(&ur).Error; err != nil {
			t.Fatalf("Failed to assign role %q to %q: %v", roleName, username, err)
		}
	}

	return user
}

// DeactivateTestUser flips a user to inactive.
func DeactivateTestUser(t *testing.T, db *gorm.DB, userID uuid.UUID) {
	if err := db.Model(&models.User{}).Where("user_id = ?", userID).Update("is_active", false).Error; err != nil {
		t.Fatalf("Failed to deactivate user: %v", err)
	}
}
