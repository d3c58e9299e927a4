package repository

import (
	"fmt"

	"go-inventory-api/internal/model"

	"gorm.io/gorm"
)

// LowStockThreshold is the fixed stock level under which a product counts as low.
const LowStockThreshold = 10

// DashboardSummary holds the aggregates for the dashboard endpoint.
type DashboardSummary struct {
	TotalProducts  int64   `json:"totalProducts"`
	LowStockItems  int64   `json:"lowStockItems"`
	TotalSuppliers int64   `json:"totalSuppliers"`
	TotalCustomers int64   `json:"totalCustomers"`
	TotalSales     float64 `json:"totalSales"`
	TotalPurchases float64 `json:"totalPurchases"`
}

type DashboardRepository interface {
	GetSummary() (*DashboardSummary, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

// GetSummary computes each aggregate independently. A failure in any
// sub-query fails the whole summary; nothing is silently swallowed.
func (r *dashboardRepo) GetSummary() (*DashboardSummary, error) {
	var summary DashboardSummary

	if err := r.db.Model(&model.Product{}).Count(&summary.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	if err := r.db.Model(&model.Product{}).
		Where("quantity < ?", LowStockThreshold).
		Count(&summary.LowStockItems).Error; err != nil {
		return nil, fmt.Errorf("count low stock items: %w", err)
	}

	if err := r.db.Model(&model.Supplier{}).Count(&summary.TotalSuppliers).Error; err != nil {
		return nil, fmt.Errorf("count suppliers: %w", err)
	}

	if err := r.db.Model(&model.Customer{}).Count(&summary.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	if err := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&summary.TotalSales).Error; err != nil {
		return nil, fmt.Errorf("sum sales: %w", err)
	}

	if err := r.db.Model(&model.Purchase{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.TotalPurchases).Error; err != nil {
		return nil, fmt.Errorf("sum purchases: %w", err)
	}

	return &summary, nil
}
