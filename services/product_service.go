package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/warehouse-io/inventory-api/models"
	"gorm.io/gorm"
)

// ProductUpdate carries a partial update for a product. Only non-nil
// fields overwrite stored values.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	SupplierID  *uint
	Stock       *int
	WarehouseID *uint
}

// ProductService handles product persistence and search
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new product service backed by db
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns all products in insertion order
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// Create inserts a new product and returns it with its assigned ID.
// supplier_id and warehouse_id are accepted as supplied; existence of the
// referenced rows is not checked here.
func (s *ProductService) Create(product *models.Product) error {
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// Get returns the product with the given id, or ErrNotFound
func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching product %d: %w", id, err)
	}
	return &product, nil
}

// Update applies the non-nil fields of update to the stored product.
// Omitted fields retain their prior values.
func (s *ProductService) Update(id uint, update ProductUpdate) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.SupplierID != nil {
		fields["supplier_id"] = *update.SupplierID
	}
	if update.Stock != nil {
		fields["stock"] = *update.Stock
	}
	if update.WarehouseID != nil {
		fields["warehouse_id"] = *update.WarehouseID
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.db.Model(product).Updates(fields).Error; err != nil {
		return fmt.Errorf("updating product %d: %w", id, err)
	}
	return nil
}

// Delete removes the product with the given id, or returns ErrNotFound.
// Deleting the same id twice never succeeds twice.
func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search filters products by an optional case-insensitive substring match
// on name and an optional exact supplier name. Both filters compose with
// AND semantics. When supplierName is supplied but no supplier with that
// exact name exists, the result is empty regardless of the name filter.
func (s *ProductService) Search(name, supplierName string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if supplierName != "" {
		var supplier models.Supplier
		err := s.db.Where("name = ?", supplierName).First(&supplier).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Product{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolving supplier %q: %w", supplierName, err)
		}
		query = query.Where("supplier_id = ?", supplier.ID)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return products, nil
}

// UpdateStock overwrites the stored stock count unconditionally; negative
// values are accepted as supplied
func (s *ProductService) UpdateStock(id uint, stock int) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(product).Update("stock", stock).Error; err != nil {
		return fmt.Errorf("updating stock for product %d: %w", id, err)
	}
	return nil
}
