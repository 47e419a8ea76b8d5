package models

// ProductType distinguishes one-time equipment from recurring services
type ProductType string

const (
	ProductTypeEquipment ProductType = "Equipment"
	ProductTypeService   ProductType = "Service"
)

// Product represents a sellable product or service. The same product name may
// appear at several price points, so uniqueness is over (product, price).
// Equipment is conventionally priced at 0 (complimentary with a service plan).
type Product struct {
	ID    uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string      `json:"product" gorm:"column:product;size:100;not null;uniqueIndex:idx_products_name_price" validate:"required,min=1,max=100"`
	Type  ProductType `json:"product_type" gorm:"column:product_type;size:20;not null" validate:"required,oneof=Equipment Service"`
	Price float64     `json:"price" gorm:"column:price;not null;uniqueIndex:idx_products_name_price" validate:"min=0"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
