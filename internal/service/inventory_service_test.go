package service_test

import (
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"
	"go-inventory-api/internal/service"
	"go-inventory-api/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInventoryService(db *gorm.DB) service.InventoryService {
	hub := ws.NewHub()
	go hub.Run()
	return service.NewInventoryService(repository.NewProductRepo(db), hub)
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateProductDefaultsCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	product, err := svc.CreateProduct(&service.CreateProductRequest{Name: "Widget", Price: f64Ptr(5)})
	require.NoError(t, err)
	require.Equal(t, "Uncategorized", product.Category)
	require.NotEqual(t, uuid.Nil, product.ID)
}

func TestCreateProductDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	_, err := svc.CreateProduct(&service.CreateProductRequest{Name: "Widget", Price: f64Ptr(5)})
	require.NoError(t, err)

	_, err = svc.CreateProduct(&service.CreateProductRequest{Name: "Widget", Price: f64Ptr(9)})
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateProductMissingName(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	_, err := svc.CreateProduct(&service.CreateProductRequest{Price: f64Ptr(5)})
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateProductMissingPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	_, err := svc.CreateProduct(&service.CreateProductRequest{Name: "NoPrice"})
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateProductZeroPriceAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	product, err := svc.CreateProduct(&service.CreateProductRequest{Name: "Freebie", Price: f64Ptr(0)})
	require.NoError(t, err)
	require.Zero(t, product.Price)
}

func TestUpdateProductPartialPreservesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	product := createProduct(t, db, "Widget", 42, 5)

	updated, err := svc.UpdateProduct(product.ID, &service.UpdateProductRequest{
		Name:  strPtr("Gadget"),
		Price: f64Ptr(7.5),
	})
	require.NoError(t, err)
	require.Equal(t, "Gadget", updated.Name)
	require.Equal(t, 7.5, updated.Price)
	require.Equal(t, "Uncategorized", updated.Category)

	// Quantity is not reachable through update
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	require.Equal(t, 42, reloaded.Quantity)
}

func TestUpdateProductDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	createProduct(t, db, "Widget", 0, 5)
	gadget := createProduct(t, db, "Gadget", 0, 5)

	// Renaming onto an existing name is invalid input, not a missing record
	_, err := svc.UpdateProduct(gadget.ID, &service.UpdateProductRequest{Name: strPtr("Widget")})
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.NotErrorIs(t, err, service.ErrProductNotFound)
}

func TestUpdateProductKeepOwnName(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	product := createProduct(t, db, "Widget", 0, 5)

	// Re-submitting the current name is not a duplicate
	updated, err := svc.UpdateProduct(product.ID, &service.UpdateProductRequest{
		Name:  strPtr("Widget"),
		Price: f64Ptr(6),
	})
	require.NoError(t, err)
	require.Equal(t, "Widget", updated.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	_, err := svc.UpdateProduct(uuid.New(), &service.UpdateProductRequest{Name: strPtr("Gadget")})
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	product := createProduct(t, db, "Widget", 0, 5)
	require.NoError(t, svc.DeleteProduct(product.ID))

	err := db.First(&model.Product{}, "id = ?", product.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	err := svc.DeleteProduct(uuid.New())
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestGetAllProductsSortedByName(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(db)

	createProduct(t, db, "Washer", 1, 1)
	createProduct(t, db, "Bolt", 1, 1)
	createProduct(t, db, "Nut", 1, 1)

	products, err := svc.GetAllProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "Bolt", products[0].Name)
	require.Equal(t, "Nut", products[1].Name)
	require.Equal(t, "Washer", products[2].Name)
}
