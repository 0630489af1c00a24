package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warehouse-io/inventory-api/models"
)

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Supplier{}, &models.Warehouse{}, &models.Product{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createTestProduct(t *testing.T, service *ProductService, name string, supplierID uint) *models.Product {
	t.Helper()

	product := models.Product{
		Name:        name,
		Price:       10.99,
		SupplierID:  supplierID,
		Stock:       5,
		WarehouseID: 1,
	}
	require.NoError(t, service.Create(&product))
	return &product
}

func TestProductCreateAndGet(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	description := "A very useful widget"
	product := models.Product{
		Name:        "Widget",
		Description: &description,
		Price:       10.99,
		SupplierID:  1,
		Stock:       5,
		WarehouseID: 1,
	}

	require.NoError(t, service.Create(&product))
	require.NotZero(t, product.ID)

	// Create followed by get returns the created record
	fetched, err := service.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, fetched.Name)
	assert.Equal(t, description, *fetched.Description)
	assert.Equal(t, product.Price, fetched.Price)
	assert.Equal(t, product.SupplierID, fetched.SupplierID)
	assert.Equal(t, product.Stock, fetched.Stock)
	assert.Equal(t, product.WarehouseID, fetched.WarehouseID)
}

func TestProductCreateAcceptsDanglingReferences(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	// No supplier or warehouse rows exist; the create still succeeds
	product := models.Product{Name: "Orphan", Price: 1.50, SupplierID: 42, Stock: 1, WarehouseID: 99}
	assert.NoError(t, service.Create(&product))
	assert.NotZero(t, product.ID)
}

func TestProductGetNotFound(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	_, err := service.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductList(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	products, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, products)

	createTestProduct(t, service, "Widget", 1)
	createTestProduct(t, service, "Gadget", 1)

	products, err = service.List()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductUpdatePartialFields(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	product := createTestProduct(t, service, "Widget", 1)

	newPrice := 12.50
	require.NoError(t, service.Update(product.ID, ProductUpdate{Price: &newPrice}))

	// Only the supplied field changed; everything else kept its value
	updated, err := service.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, newPrice, updated.Price)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, uint(1), updated.SupplierID)
}

func TestProductUpdateEmptyInputIsNoOp(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	product := createTestProduct(t, service, "Widget", 1)
	require.NoError(t, service.Update(product.ID, ProductUpdate{}))

	updated, err := service.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, 10.99, updated.Price)
}

func TestProductUpdateNotFound(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	name := "Renamed"
	err := service.Update(999, ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	product := createTestProduct(t, service, "Widget", 1)

	require.NoError(t, service.Delete(product.ID))

	_, err := service.Get(product.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Delete never succeeds twice on the same id
	assert.ErrorIs(t, service.Delete(product.ID), ErrNotFound)
}

func TestProductDeleteNotFound(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	assert.ErrorIs(t, service.Delete(999), ErrNotFound)
}

func TestProductSearchByNameSubstring(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	createTestProduct(t, service, "Steel Widget", 1)
	createTestProduct(t, service, "WIDGETIZER", 1)
	createTestProduct(t, service, "Gadget", 1)

	// Case-insensitive substring match anywhere in the name
	results, err := service.Search("widget", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = service.Search("WiDgEt", "")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = service.Search("nothing-like-this", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductSearchBySupplierName(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	acme := models.Supplier{Name: "Acme"}
	require.NoError(t, db.Create(&acme).Error)
	other := models.Supplier{Name: "Globex"}
	require.NoError(t, db.Create(&other).Error)

	widget := createTestProduct(t, service, "Widget", acme.ID)
	createTestProduct(t, service, "Gadget", other.ID)

	results, err := service.Search("", "Acme")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, widget.ID, results[0].ID)
}

func TestProductSearchUnknownSupplierReturnsEmpty(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	createTestProduct(t, service, "Widget", 1)

	// A missing supplier short-circuits to empty even though the name
	// filter alone would have matched
	results, err := service.Search("Widget", "Acme")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductSearchCombinedFilters(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	acme := models.Supplier{Name: "Acme"}
	require.NoError(t, db.Create(&acme).Error)

	widget := createTestProduct(t, service, "Widget", acme.ID)
	createTestProduct(t, service, "Widget", acme.ID+1) // same name, other supplier
	createTestProduct(t, service, "Gadget", acme.ID)   // same supplier, other name

	results, err := service.Search("widg", "Acme")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, widget.ID, results[0].ID)
}

func TestProductUpdateStock(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	product := createTestProduct(t, service, "Widget", 1)

	require.NoError(t, service.UpdateStock(product.ID, 42))

	updated, err := service.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "Widget", updated.Name, "Stock update must not touch other fields")
}

func TestProductUpdateStockNotFound(t *testing.T) {
	db := setupProductTestDB(t)
	service := NewProductService(db)

	assert.ErrorIs(t, service.UpdateStock(999, 10), ErrNotFound)
}
