package model

import "golang.org/x/crypto/bcrypt"

// Role codes as constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is defined for completeness; no route currently exposes it.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username" validate:"required"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role         string `gorm:"type:varchar(10);not null;default:'admin'" json:"role" validate:"omitempty,oneof=admin user"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
