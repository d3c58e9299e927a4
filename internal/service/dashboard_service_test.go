package service_test

import (
	"testing"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) service.DashboardService {
	return service.NewDashboardService(repository.NewDashboardRepo(db))
}

func TestDashboardSummaryEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	require.Zero(t, summary.TotalProducts)
	require.Zero(t, summary.LowStockItems)
	require.Zero(t, summary.TotalSuppliers)
	require.Zero(t, summary.TotalCustomers)
	require.Zero(t, summary.TotalSales)
	require.Zero(t, summary.TotalPurchases)
}

func TestDashboardSummaryTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	createProduct(t, db, "Bolt", 5, 1)
	createProduct(t, db, "Nut", 10, 1) // exactly at the threshold, not low stock
	createSupplier(t, db, "SupplierX")
	createCustomer(t, db, "CustomerY")
	createCustomer(t, db, "CustomerZ")

	for _, price := range []float64{10, 15} {
		require.NoError(t, db.Create(&model.Sale{
			Date: time.Now(), Quantity: 1, TotalPrice: price,
			ProductID: uuid.New(), CustomerID: uuid.New(),
		}).Error)
	}
	require.NoError(t, db.Create(&model.Purchase{
		Date: time.Now(), Quantity: 1, TotalCost: 80,
		ProductID: uuid.New(), SupplierID: uuid.New(),
	}).Error)

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.TotalProducts)
	require.EqualValues(t, 1, summary.LowStockItems)
	require.EqualValues(t, 1, summary.TotalSuppliers)
	require.EqualValues(t, 2, summary.TotalCustomers)
	require.EqualValues(t, 25, summary.TotalSales)
	require.EqualValues(t, 80, summary.TotalPurchases)
}

func TestDashboardSummaryFailsOnSubQueryError(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	// A broken sub-query must fail the whole summary, not be swallowed.
	require.NoError(t, db.Migrator().DropTable(&model.Sale{}))

	_, err := svc.GetSummary()
	require.Error(t, err)
}
