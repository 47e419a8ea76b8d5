package service

import (
	"errors"
	"fmt"

	"customer-tracker/internal/database/models"
	apperrors "customer-tracker/internal/errors"
	"customer-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProductService provides product-related business logic
type ProductService struct {
	repo      repository.ProductRepositoryInterface
	validator *validator.Validate
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepositoryInterface, validator *validator.Validate) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
	}
}

// AddProductRequest represents the input for creating a product entry
type AddProductRequest struct {
	Name  string             `validate:"required,min=1,max=100"`
	Type  models.ProductType `validate:"required,oneof=Equipment Service"`
	Price float64            `validate:"min=0"`
}

// ProductResponse represents a product entry in operation results
type ProductResponse struct {
	ID    uint               `json:"id"`
	Name  string             `json:"product"`
	Type  models.ProductType `json:"product_type"`
	Price float64            `json:"price"`
}

// Add creates a new product entry. Equipment is complimentary, so its price
// is forced to 0 regardless of the requested value. Returns ErrProductExists
// when an entry with the same (product, price) pair is already present.
func (s *ProductService) Add(req *AddProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	price := req.Price
	if req.Type == models.ProductTypeEquipment {
		price = 0
	}

	exists, err := s.repo.ExistsWithPrice(req.Name, price)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing product: %w", err)
	}
	if exists {
		return nil, apperrors.ErrProductExists
	}

	product := &models.Product{
		Name:  req.Name,
		Type:  req.Type,
		Price: price,
	}

	if err := s.repo.Create(product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrProductExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.toResponse(product), nil
}

// Remove deletes the entry matching both id and name and cascades to the
// assignments referencing its (product, price) pair. Removing an id that no
// longer exists is a no-op.
func (s *ProductService) Remove(id uint, name string) error {
	if err := s.repo.DeleteByIDAndName(id, name); err != nil {
		return fmt.Errorf("failed to remove product: %w", err)
	}
	return nil
}

// FindByName retrieves every entry for a product name in insertion order
func (s *ProductService) FindByName(name string) ([]ProductResponse, error) {
	products, err := s.repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return s.toResponses(products), nil
}

// List retrieves all products
func (s *ProductService) List() ([]ProductResponse, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return s.toResponses(products), nil
}

// UpdatePrice sets a new price on the entry with the given id. Assignments
// referencing the old (product, price) pair follow the new price.
func (s *ProductService) UpdatePrice(id uint, price float64) error {
	if price < 0 {
		return apperrors.NewValidationError("price", "must not be negative")
	}
	if err := s.repo.UpdatePrice(id, price); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrProductExists
		}
		return fmt.Errorf("failed to update price: %w", err)
	}
	return nil
}

// Exists reports whether any entry exists for the product name
func (s *ProductService) Exists(name string) (bool, error) {
	return s.repo.ExistsByName(name)
}

// ExistsWithPrice reports whether an entry exists for the (product, price) pair
func (s *ProductService) ExistsWithPrice(name string, price float64) (bool, error) {
	return s.repo.ExistsWithPrice(name, price)
}

// IDBelongsTo reports whether the id identifies an entry of the named product
func (s *ProductService) IDBelongsTo(id uint, name string) (bool, error) {
	return s.repo.IDBelongsTo(id, name)
}

// toResponse converts a Product model to an operation result
func (s *ProductService) toResponse(product *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Type:  product.Type,
		Price: product.Price,
	}
}

func (s *ProductService) toResponses(products []models.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = *s.toResponse(&p)
	}
	return responses
}
