package service

import (
	"errors"
	"fmt"

	"customer-tracker/internal/database/models"
	apperrors "customer-tracker/internal/errors"
	"customer-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AssignmentService provides assignment and billing business logic
type AssignmentService struct {
	repo         repository.AssignmentRepositoryInterface
	customerRepo repository.CustomerRepositoryInterface
	productRepo  repository.ProductRepositoryInterface
	validator    *validator.Validate
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	repo repository.AssignmentRepositoryInterface,
	customerRepo repository.CustomerRepositoryInterface,
	productRepo repository.ProductRepositoryInterface,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		repo:         repo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		validator:    validator,
	}
}

// AssignRequest represents the input for assigning a product to a customer
type AssignRequest struct {
	CustomerName     string  `validate:"required"`
	CustomerLocation string  `validate:"required"`
	ProductName      string  `validate:"required"`
	ProductPrice     float64 `validate:"min=0"`
}

// AssignmentResponse represents an assignment in operation results
type AssignmentResponse struct {
	ID               uint    `json:"id"`
	CustomerName     string  `json:"customer_name"`
	CustomerLocation string  `json:"customer_location"`
	ProductName      string  `json:"product_name"`
	ProductPrice     float64 `json:"product_price"`
}

// Assign records that the customer at the location has the product at the
// price. Both parent pairs must exist; a missing pair surfaces as a
// referential violation, and an already-present tuple as ErrAssignmentExists.
func (s *AssignmentService) Assign(req *AssignRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	customerOK, err := s.customerRepo.ExistsAtLocation(req.CustomerName, req.CustomerLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to verify customer: %w", err)
	}
	if !customerOK {
		return nil, apperrors.ErrCustomerReference
	}

	productOK, err := s.productRepo.ExistsWithPrice(req.ProductName, req.ProductPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to verify product: %w", err)
	}
	if !productOK {
		return nil, apperrors.ErrProductReference
	}

	assignment := &models.Assignment{
		CustomerName:     req.CustomerName,
		CustomerLocation: req.CustomerLocation,
		ProductName:      req.ProductName,
		ProductPrice:     req.ProductPrice,
	}

	if err := s.repo.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAssignmentExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// Unassign deletes an assignment by id. Deleting an unknown id is a no-op;
// the caller pre-checks with IDExists to report accurately.
func (s *AssignmentService) Unassign(id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	return nil
}

// List retrieves all assignments
func (s *AssignmentService) List() ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *s.toResponse(&a)
	}
	return responses, nil
}

// ListByCustomer retrieves all assignments held by the customer name
func (s *AssignmentService) ListByCustomer(name string) ([]AssignmentResponse, error) {
	assignments, err := s.repo.GetByCustomerName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = *s.toResponse(&a)
	}
	return responses, nil
}

// IDExists reports whether an assignment with the id exists
func (s *AssignmentService) IDExists(id uint) (bool, error) {
	return s.repo.IDExists(id)
}

// CustomerHasAssignment reports whether the customer name has at least one
// assignment. Callers use this to tell "no products" apart from a $0.00 bill.
func (s *AssignmentService) CustomerHasAssignment(name string) (bool, error) {
	return s.repo.CustomerHasAny(name)
}

// MonthlyBill returns the sum of product prices across all assignments for
// the customer name, as a string with exactly two decimal places. Prices are
// summed exactly in decimal, then rounded half away from zero, so float noise
// in the stored prices cannot leak into the bill.
func (s *AssignmentService) MonthlyBill(name string) (string, error) {
	assignments, err := s.repo.GetByCustomerName(name)
	if err != nil {
		return "", fmt.Errorf("failed to compute monthly bill: %w", err)
	}

	total := decimal.Zero
	for _, a := range assignments {
		total = total.Add(decimal.NewFromFloat(a.ProductPrice))
	}
	return total.StringFixed(2), nil
}

// toResponse converts an Assignment model to an operation result
func (s *AssignmentService) toResponse(assignment *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               assignment.ID,
		CustomerName:     assignment.CustomerName,
		CustomerLocation: assignment.CustomerLocation,
		ProductName:      assignment.ProductName,
		ProductPrice:     assignment.ProductPrice,
	}
}
