package models

// Product represents a sellable item tracked in inventory
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"` // nullable
	Price       float64 `json:"price"`
	SupplierID  uint    `gorm:"index" json:"supplier_id"` // referential field, existence not checked at the service layer
	Stock       int     `json:"stock"`
	WarehouseID uint    `gorm:"index" json:"warehouse_id"` // referential field, see suppliers note above
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
