package services

import (
	"fmt"

	"github.com/warehouse-io/inventory-api/models"
	"gorm.io/gorm"
)

// WarehouseService handles warehouse persistence. Create-only, same scope
// as SupplierService.
type WarehouseService struct {
	db *gorm.DB
}

// NewWarehouseService creates a new warehouse service backed by db
func NewWarehouseService(db *gorm.DB) *WarehouseService {
	return &WarehouseService{db: db}
}

// Create inserts a new warehouse and returns it with its assigned ID
func (s *WarehouseService) Create(warehouse *models.Warehouse) error {
	if err := s.db.Create(warehouse).Error; err != nil {
		return fmt.Errorf("creating warehouse: %w", err)
	}
	return nil
}
