package repository

import (
	"time"

	"customer-tracker/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CustomerRepositoryInterface defines the interface for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByName(name string) ([]models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetLateSince(cutoff time.Time) ([]models.Customer, error)
	UpdateLastPayment(id uint, lastPayment time.Time) error
	DeleteByIDAndName(id uint, name string) error
	ExistsByName(name string) (bool, error)
	ExistsAtLocation(name, location string) (bool, error)
	IDBelongsTo(id uint, name string) (bool, error)
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByName(name string) ([]models.Product, error)
	GetAll() ([]models.Product, error)
	UpdatePrice(id uint, price float64) error
	DeleteByIDAndName(id uint, name string) error
	ExistsByName(name string) (bool, error)
	ExistsWithPrice(name string, price float64) (bool, error)
	IDBelongsTo(id uint, name string) (bool, error)
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetAll() ([]models.Assignment, error)
	GetByCustomerName(name string) ([]models.Assignment, error)
	DeleteByID(id uint) error
	IDExists(id uint) (bool, error)
	CustomerHasAny(name string) (bool, error)
}
