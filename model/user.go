package model

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/hsmcare/appointment-api/util"
)

// User types accepted by signup.
const (
	UserTypeDoctor  = "doctor"
	UserTypePatient = "patient"
)

// User is an account used for credential-based login.
// Passwords are stored as bcrypt hashes, never plaintext.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"type:varchar(100);uniqueIndex;not null" example:"drsmith"`
	Password string `json:"-" gorm:"type:varchar(100);not null"`
	UserType string `json:"user_type" gorm:"type:varchar(10);not null" example:"doctor"`
}

// SeedDefaultDoctor ensures the bootstrap doctor account exists so the API
// is usable on a fresh database. Safe to call on every start.
func SeedDefaultDoctor(db *gorm.DB) error {
	var existing User
	err := db.Where("username = ?", "doctor").First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := util.HashPassword("doctor")
	if err != nil {
		return fmt.Errorf("failed to hash default doctor password: %w", err)
	}
	if err := db.Create(&User{
		Username: "doctor",
		Password: hashed,
		UserType: UserTypeDoctor,
	}).Error; err != nil {
		return fmt.Errorf("failed to seed default doctor: %w", err)
	}
	return nil
}
