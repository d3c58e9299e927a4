package service

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	CreateSupplier(req *model.Supplier) error
	GetAllSuppliers() ([]model.Supplier, error)
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierService(sRepo repository.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: sRepo}
}

func (s *supplierService) CreateSupplier(req *model.Supplier) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	existing, _ := s.supplierRepo.FindByName(req.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return &ValidationError{Message: "Supplier name already exists"}
	}

	return s.supplierRepo.Create(req)
}

func (s *supplierService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}
