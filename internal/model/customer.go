package model

type Customer struct {
	BaseModel
	Name  string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone string  `gorm:"type:varchar(20)" json:"phone"`
	Email *string `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty" validate:"omitempty,email"` // Optional but unique when present
}
