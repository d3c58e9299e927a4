package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is an immutable ledger entry, the outbound counterpart of Purchase.
type Sale struct {
	BaseModel
	Date       time.Time `gorm:"not null;index" json:"date"`
	Quantity   int       `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	TotalPrice float64   `gorm:"not null" json:"total_price" validate:"gte=0"`

	ProductID  uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product    Product   `json:"product" validate:"-"` // Resolved at read time
	CustomerID uuid.UUID `gorm:"type:uuid;not null" json:"customer_id" validate:"uuid_required"`
	Customer   Customer  `json:"customer" validate:"-"`
}
