package models

// Warehouse represents a storage location holding product stock
type Warehouse struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Location string `gorm:"size:255;not null" json:"location"`
	Capacity *int   `json:"capacity"` // nullable, maximum units the warehouse can hold
}

// TableName specifies the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}
