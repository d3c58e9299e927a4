package repository

import (
	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Updates(id uuid.UUID, fields map[string]interface{}) (*model.Product, error)
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error
	Delete(id uuid.UUID) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	return &product, err
}

// FindByIDForUpdate loads a product with a row lock so the check-then-act
// sequence on quantity cannot interleave with a concurrent mutation.
// SQLite has no row locks; its single-writer model covers the same case.
func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var product model.Product
	err := q.First(&product, "id = ?", id).Error
	return &product, err
}

// Updates applies a partial field set and returns the reloaded record.
// Quantity is never part of the map; stock moves only through UpdateQuantity.
func (r *productRepo) Updates(id uuid.UUID, fields map[string]interface{}) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return &product, nil
	}
	if err := r.db.Model(&product).Updates(fields).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateQuantity receives *gorm.DB (tx) so the stock write runs inside the
// caller's transaction
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}

func (r *productRepo) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&model.Product{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
