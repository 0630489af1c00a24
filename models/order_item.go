package models

// OrderItem represents a single line of an order. It belongs to exactly
// one order and is only ever manipulated through that order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `gorm:"index" json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // price snapshot taken at order time

	// Product is populated by the order-items lookup so responses can carry
	// the referenced product. It is nil when the product no longer exists.
	Product *Product `gorm:"-" json:"product"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
