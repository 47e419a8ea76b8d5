package testutils

import (
	"time"

	"customer-tracker/internal/database/models"
)

// CustomerFactory provides methods to create test Customer data
type CustomerFactory struct{}

// NewCustomerFactory creates a new CustomerFactory
func NewCustomerFactory() *CustomerFactory {
	return &CustomerFactory{}
}

// Create creates a test Customer with default values
func (f *CustomerFactory) Create() *models.Customer {
	signUp := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	return &models.Customer{
		Name:        "Alice Johnson",
		PhoneNum:    "555-123-4567",
		Location:    "12 Main St",
		CardNum:     "4111111111111111",
		SignUpDate:  signUp,
		LastPayment: signUp,
	}
}

// WithName sets a custom name for the customer
func (f *CustomerFactory) WithName(name string) *models.Customer {
	customer := f.Create()
	customer.Name = name
	return customer
}

// WithLocation sets a custom location for the customer
func (f *CustomerFactory) WithLocation(location string) *models.Customer {
	customer := f.Create()
	customer.Location = location
	return customer
}

// WithLastPayment sets a custom last payment timestamp for the customer
func (f *CustomerFactory) WithLastPayment(lastPayment time.Time) *models.Customer {
	customer := f.Create()
	customer.LastPayment = lastPayment
	return customer
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with default values
func (f *ProductFactory) Create() *models.Product {
	return &models.Product{
		Name:  "Fiber100",
		Type:  models.ProductTypeService,
		Price: 49.99,
	}
}

// WithName sets a custom name for the product
func (f *ProductFactory) WithName(name string) *models.Product {
	product := f.Create()
	product.Name = name
	return product
}

// WithPrice sets a custom price for the product
func (f *ProductFactory) WithPrice(price float64) *models.Product {
	product := f.Create()
	product.Price = price
	return product
}

// Equipment creates a complimentary equipment product priced at 0
func (f *ProductFactory) Equipment(name string) *models.Product {
	return &models.Product{
		Name:  name,
		Type:  models.ProductTypeEquipment,
		Price: 0,
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values matching the default
// Customer and Product factories
func (f *AssignmentFactory) Create() *models.Assignment {
	return &models.Assignment{
		CustomerName:     "Alice Johnson",
		CustomerLocation: "12 Main St",
		ProductName:      "Fiber100",
		ProductPrice:     49.99,
	}
}

// For builds an assignment linking the given customer and product entries
func (f *AssignmentFactory) For(customer *models.Customer, product *models.Product) *models.Assignment {
	return &models.Assignment{
		CustomerName:     customer.Name,
		CustomerLocation: customer.Location,
		ProductName:      product.Name,
		ProductPrice:     product.Price,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Customer   *CustomerFactory
	Product    *ProductFactory
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Customer:   NewCustomerFactory(),
		Product:    NewProductFactory(),
		Assignment: NewAssignmentFactory(),
	}
}
