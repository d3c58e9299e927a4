package service

import (
	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	CreateCustomer(req *model.Customer) error
	GetAllCustomers() ([]model.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(cRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: cRepo}
}

func (s *customerService) CreateCustomer(req *model.Customer) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	// Email is optional but unique when present
	if req.Email != nil && *req.Email != "" {
		existing, _ := s.customerRepo.FindByEmail(*req.Email)
		if existing != nil && existing.ID != uuid.Nil {
			return &ValidationError{Message: "Customer email already exists"}
		}
	}

	return s.customerRepo.Create(req)
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}
