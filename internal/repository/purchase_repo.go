package repository

import (
	"go-inventory-api/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll() ([]model.Purchase, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

// Create receives *gorm.DB (tx) so the ledger insert runs inside the
// stock transaction
func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	// Preload resolves the Product and Supplier references for display
	err := r.db.Preload("Product").Preload("Supplier").Order("date DESC").Find(&purchases).Error
	return purchases, err
}
