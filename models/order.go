package models

import (
	"time"
)

// Allowed order status values. No other value is ever persisted.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether status is one of the allowed values
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order in the system
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"size:255;not null" json:"customer_name"`
	CustomerAddress *string     `gorm:"size:255" json:"customer_address"` // nullable
	OrderDate       time.Time   `json:"order_date"`                       // defaults to creation time when not supplied
	Status          string      `gorm:"not null" json:"status"`           // pending, fulfilled, cancelled
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
