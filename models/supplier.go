package models

// Supplier represents a product supplier in the system
type Supplier struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	ContactInfo *string `gorm:"size:255" json:"contact_info"` // nullable, free-form contact details
}

// TableName specifies the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
