package model

type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	ContactNumber string `gorm:"type:varchar(20)" json:"contact_number"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}
