package service

import (
	"errors"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/ws"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService is the stock transaction workflow: the only code path that
// mutates Product.Quantity. Each operation couples the stock write and the
// ledger insert inside one database transaction so they commit or roll back
// together.
type LedgerService interface {
	RecordPurchase(req *model.Purchase) error
	RecordSale(req *model.Sale) error
	GetAllPurchases() ([]model.Purchase, error)
	GetAllSales() ([]model.Sale, error)
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	db           *gorm.DB
	wsHub        *ws.Hub
	log          *zap.Logger
}

func NewLedgerService(
	pRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	db *gorm.DB,
	hub *ws.Hub,
	log *zap.Logger,
) LedgerService {
	return &ledgerService{
		productRepo:  pRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		db:           db,
		wsHub:        hub,
		log:          log,
	}
}

// RecordPurchase increments product stock and appends a purchase ledger entry.
func (s *ledgerService) RecordPurchase(req *model.Purchase) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	var newQuantity int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		newQuantity = product.Quantity + req.Quantity
		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return err
		}

		return s.purchaseRepo.Create(tx, req)
	})
	if err != nil {
		s.log.Warn("purchase rejected",
			zap.String("product_id", req.ProductID.String()),
			zap.Int("quantity", req.Quantity),
			zap.Error(err))
		return err
	}

	s.log.Info("purchase recorded",
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity),
		zap.Int("new_quantity", newQuantity))
	s.wsHub.BroadcastEvent("purchase_recorded", map[string]interface{}{
		"product_id":   req.ProductID,
		"quantity":     req.Quantity,
		"new_quantity": newQuantity,
	})
	return nil
}

// RecordSale decrements product stock after checking availability, then
// appends a sale ledger entry. The availability check and the decrement run
// under the same row lock, so a concurrent sale cannot oversell.
func (s *ledgerService) RecordSale(req *model.Sale) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	var newQuantity int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, req.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if product.Quantity < req.Quantity {
			return &InsufficientStockError{Available: product.Quantity}
		}

		newQuantity = product.Quantity - req.Quantity
		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity); err != nil {
			return err
		}

		return s.saleRepo.Create(tx, req)
	})
	if err != nil {
		s.log.Warn("sale rejected",
			zap.String("product_id", req.ProductID.String()),
			zap.Int("quantity", req.Quantity),
			zap.Error(err))
		return err
	}

	s.log.Info("sale recorded",
		zap.String("product_id", req.ProductID.String()),
		zap.Int("quantity", req.Quantity),
		zap.Int("new_quantity", newQuantity))
	s.wsHub.BroadcastEvent("sale_recorded", map[string]interface{}{
		"product_id":   req.ProductID,
		"quantity":     req.Quantity,
		"new_quantity": newQuantity,
	})
	return nil
}

func (s *ledgerService) GetAllPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *ledgerService) GetAllSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}
