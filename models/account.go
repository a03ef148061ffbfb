package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account is a user of the HR backend itself (not a staff record).
type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName     string    `gorm:"size:250;uniqueIndex;not null" json:"user_name"`
	Name         string    `gorm:"size:250;not null" json:"name"`
	Email        string    `gorm:"size:500" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // "-" means don't include in JSON responses
	Role         string    `gorm:"size:25;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	Status       bool      `gorm:"not null;default:true;index" json:"status"`
}

// TableName explicitly sets the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// SetPassword hashes the given password and sets it on the account.
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the given password matches the stored hash.
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}
