package service

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductRequest is the accepted creation body. Price is a pointer so
// a missing price fails required validation while an explicit 0 is legal.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category"`
	Quantity int      `json:"quantity" validate:"min=0"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// UpdateProductRequest is the partial field set accepted by product update.
// Quantity is deliberately absent: stock is reachable only through the
// ledger workflow.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

type InventoryService interface {
	CreateProduct(req *CreateProductRequest) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetAllProducts() ([]model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(req *CreateProductRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Duplicate name check (business rule, ahead of the unique index)
	existing, _ := s.productRepo.FindByName(req.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, &ValidationError{Message: "Product name already exists"}
	}

	product := &model.Product{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Price:    *req.Price,
	}
	if product.Category == "" {
		product.Category = "Uncategorized"
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.wsHub.BroadcastEvent("product_created", product)
	return product, nil
}

func (s *inventoryService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, &ValidationError{Message: "Product name must not be empty"}
		}
		// Duplicate name check against other products
		existing, _ := s.productRepo.FindByName(*req.Name)
		if existing != nil && existing.ID != uuid.Nil && existing.ID != id {
			return nil, &ValidationError{Message: "Product name already exists"}
		}
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, &ValidationError{Message: "Product price must not be negative"}
		}
		fields["price"] = *req.Price
	}

	updated, err := s.productRepo.Updates(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		// Constraint violations and other write failures are invalid input,
		// not a missing record
		return nil, &ValidationError{Message: err.Error()}
	}

	s.wsHub.BroadcastEvent("product_updated", updated)
	return updated, nil
}

func (s *inventoryService) DeleteProduct(id uuid.UUID) error {
	affected, err := s.productRepo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	s.wsHub.BroadcastEvent("product_deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}
