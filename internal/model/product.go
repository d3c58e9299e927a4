package model

type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Category string  `gorm:"type:varchar(100);not null;default:'Uncategorized'" json:"category"`
	Quantity int     `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"` // Current stock, mutated only by the ledger workflow
	Price    float64 `gorm:"not null;default:0" json:"price"`                        // Selling price

	// Relations
	Purchases []Purchase `json:"purchases,omitempty"`
	Sales     []Sale     `json:"sales,omitempty"`
}
