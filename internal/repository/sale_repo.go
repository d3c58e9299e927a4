package repository

import (
	"go-inventory-api/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll() ([]model.Sale, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create receives *gorm.DB (tx) so the ledger insert runs inside the
// stock transaction
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	// Preload resolves the Product and Customer references for display
	err := r.db.Preload("Product").Preload("Customer").Order("date DESC").Find(&sales).Error
	return sales, err
}
