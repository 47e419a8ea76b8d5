package models

// Assignment records that a customer at a location currently has a product at
// a price. Parents are referenced by value pairs, not by row id: deleting or
// re-pricing a parent propagates to matching assignment rows through the
// repository-level cascade that runs inside the parent's transaction.
type Assignment struct {
	ID               uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerName     string  `json:"customer_name" gorm:"column:customer_name;size:100;not null;uniqueIndex:idx_assignments_tuple" validate:"required"`
	CustomerLocation string  `json:"customer_location" gorm:"column:customer_location;size:200;not null;uniqueIndex:idx_assignments_tuple" validate:"required"`
	ProductName      string  `json:"product_name" gorm:"column:product_name;size:100;not null;uniqueIndex:idx_assignments_tuple" validate:"required"`
	ProductPrice     float64 `json:"product_price" gorm:"column:product_price;not null;uniqueIndex:idx_assignments_tuple" validate:"min=0"`
}

// TableName returns the table name for Assignment. The table keeps the name
// used by the stored data format so existing databases stay readable.
func (Assignment) TableName() string {
	return "customer_products"
}
