package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/warehouse-io/inventory-api/models"
	"gorm.io/gorm"
)

// OrderUpdate carries a partial update for an order. Only non-nil fields
// overwrite stored values. Status is not re-validated on this path; the
// whitelist is enforced on creation and on UpdateStatus.
type OrderUpdate struct {
	CustomerName    *string
	CustomerAddress *string
	OrderDate       *time.Time
	Status          *string
}

// OrderService handles order persistence and the owned order-item
// collection
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates a new order service backed by db
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// List returns all orders with their order items nested
func (s *OrderService) List() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Preload("OrderItems").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

// Create inserts a new order after checking the status whitelist. The
// order date defaults to the current time when not supplied.
func (s *OrderService) Create(order *models.Order) error {
	if !models.ValidOrderStatus(order.Status) {
		return ErrInvalidStatus
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}

	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

// Get returns the order with the given id, or ErrNotFound
func (s *OrderService) Get(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching order %d: %w", id, err)
	}
	return &order, nil
}

// Update applies the non-nil fields of update to the stored order.
// Omitted fields retain their prior values.
func (s *OrderService) Update(id uint, update OrderUpdate) error {
	order, err := s.Get(id)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if update.CustomerName != nil {
		fields["customer_name"] = *update.CustomerName
	}
	if update.CustomerAddress != nil {
		fields["customer_address"] = *update.CustomerAddress
	}
	if update.OrderDate != nil {
		fields["order_date"] = *update.OrderDate
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.db.Model(order).Updates(fields).Error; err != nil {
		return fmt.Errorf("updating order %d: %w", id, err)
	}
	return nil
}

// Delete removes the order and its owned order items in one transaction,
// or returns ErrNotFound when the id has no matching row
func (s *OrderService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting order %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("deleting items for order %d: %w", id, err)
		}
		return nil
	})
}

// UpdateStatus sets the order status after checking the whitelist. An
// invalid status leaves the stored row untouched.
func (s *OrderService) UpdateStatus(id uint, status string) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	order, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return fmt.Errorf("updating status for order %d: %w", id, err)
	}
	return nil
}

// GetItems returns the order's items with each item's referenced product
// attached. Items whose product no longer exists carry a nil product
// rather than failing the whole call.
func (s *OrderService) GetItems(id uint) ([]models.OrderItem, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	items := order.OrderItems
	if items == nil {
		items = []models.OrderItem{}
	}
	for i := range items {
		var product models.Product
		err := s.db.First(&product, items[i].ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetching product %d for order item %d: %w",
				items[i].ProductID, items[i].ID, err)
		}
		items[i].Product = &product
	}
	return items, nil
}
