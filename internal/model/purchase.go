package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is an immutable ledger entry: it is only ever created by the stock
// transaction workflow, never updated or deleted.
type Purchase struct {
	BaseModel
	Date      time.Time `gorm:"not null;index" json:"date"`
	Quantity  int       `gorm:"not null" json:"quantity" validate:"required,gte=1"`
	TotalCost float64   `gorm:"not null" json:"total_cost" validate:"gte=0"`

	ProductID  uuid.UUID `gorm:"type:uuid;not null" json:"product_id" validate:"uuid_required"`
	Product    Product   `json:"product" validate:"-"` // Resolved at read time
	SupplierID uuid.UUID `gorm:"type:uuid;not null" json:"supplier_id" validate:"uuid_required"`
	Supplier   Supplier  `json:"supplier" validate:"-"`
}
