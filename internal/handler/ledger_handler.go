package handler

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

// CreatePurchase handles POST /api/purchases
func (h *LedgerHandler) CreatePurchase(c *fiber.Ctx) error {
	var purchase model.Purchase
	if err := c.BodyParser(&purchase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordPurchase(&purchase); err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message})
		}
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Product not found."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record purchase."})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Purchase recorded and stock updated successfully."})
}

// GetPurchases handles GET /api/purchases
func (h *LedgerHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetAllPurchases()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchase records."})
	}
	return c.JSON(purchases)
}

// CreateSale handles POST /api/sales
func (h *LedgerHandler) CreateSale(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordSale(&sale); err != nil {
		var vErr *service.ValidationError
		var stockErr *service.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			return c.Status(400).JSON(fiber.Map{"error": stockErr.Error()})
		case errors.As(err, &vErr):
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message})
		case errors.Is(err, service.ErrProductNotFound):
			return c.Status(400).JSON(fiber.Map{"error": "Product not found."})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record sale."})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded and stock updated successfully."})
}

// GetSales handles GET /api/sales
func (h *LedgerHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales records."})
	}
	return c.JSON(sales)
}
