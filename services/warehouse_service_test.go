package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/warehouse-io/inventory-api/models"
)

func setupWarehouseTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Warehouse{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestWarehouseCreate(t *testing.T) {
	db := setupWarehouseTestDB(t)
	service := NewWarehouseService(db)

	capacity := 5000
	warehouse := models.Warehouse{Location: "Rotterdam", Capacity: &capacity}

	err := service.Create(&warehouse)
	assert.NoError(t, err)
	assert.NotZero(t, warehouse.ID, "Storage should assign an ID on creation")

	var stored models.Warehouse
	assert.NoError(t, db.First(&stored, warehouse.ID).Error)
	assert.Equal(t, "Rotterdam", stored.Location)
	assert.NotNil(t, stored.Capacity)
	assert.Equal(t, capacity, *stored.Capacity)
}

func TestWarehouseCreateWithoutCapacity(t *testing.T) {
	db := setupWarehouseTestDB(t)
	service := NewWarehouseService(db)

	warehouse := models.Warehouse{Location: "Hamburg"}
	assert.NoError(t, service.Create(&warehouse))

	var stored models.Warehouse
	assert.NoError(t, db.First(&stored, warehouse.ID).Error)
	assert.Nil(t, stored.Capacity, "Capacity should stay null when omitted")
}
