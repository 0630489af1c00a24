package services

import (
	"fmt"

	"github.com/warehouse-io/inventory-api/models"
	"gorm.io/gorm"
)

// SupplierService handles supplier persistence. The service is create-only
// by design; suppliers are referenced by products but never mutated through
// the API.
type SupplierService struct {
	db *gorm.DB
}

// NewSupplierService creates a new supplier service backed by db
func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// Create inserts a new supplier and returns it with its assigned ID.
// Supplier names are not required to be unique.
func (s *SupplierService) Create(supplier *models.Supplier) error {
	if err := s.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("creating supplier: %w", err)
	}
	return nil
}
