package service

import (
	"errors"
	"fmt"
	"time"

	"customer-tracker/internal/database/models"
	apperrors "customer-tracker/internal/errors"
	"customer-tracker/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CustomerService provides customer-related business logic
type CustomerService struct {
	repo      repository.CustomerRepositoryInterface
	validator *validator.Validate
	lateDays  int
}

// NewCustomerService creates a new CustomerService. lateDays is the payment
// age, in days, beyond which a customer counts as late.
func NewCustomerService(repo repository.CustomerRepositoryInterface, validator *validator.Validate, lateDays int) *CustomerService {
	return &CustomerService{
		repo:      repo,
		validator: validator,
		lateDays:  lateDays,
	}
}

// AddCustomerRequest represents the input for creating a customer entry.
// Phone and card formats are validated here; dates arrive already parsed by
// the input layer.
type AddCustomerRequest struct {
	Name        string    `validate:"required,min=1,max=100"`
	PhoneNum    string    `validate:"required,phone"`
	Location    string    `validate:"required,min=1,max=200"`
	CardNum     string    `validate:"required,min=13,max=19"`
	SignUpDate  time.Time `validate:"required"`
	LastPayment time.Time `validate:"required"`
}

// CustomerResponse represents a customer entry in operation results
type CustomerResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNum    string    `json:"phone_num"`
	Location    string    `json:"location"`
	CardNum     string    `json:"card_num"`
	SignUpDate  time.Time `json:"sign_up_date"`
	LastPayment time.Time `json:"last_payment"`
}

// Add creates a new customer entry. Returns ErrCustomerExists when an entry
// with the same (name, location) pair is already present, whether caught by
// the pre-check or by the unique constraint underneath it.
func (s *CustomerService) Add(req *AddCustomerRequest) (*CustomerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	exists, err := s.repo.ExistsAtLocation(req.Name, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCustomerExists
	}

	customer := &models.Customer{
		Name:        req.Name,
		PhoneNum:    req.PhoneNum,
		Location:    req.Location,
		CardNum:     req.CardNum,
		SignUpDate:  req.SignUpDate,
		LastPayment: req.LastPayment,
	}

	if err := s.repo.Create(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCustomerExists
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.toResponse(customer), nil
}

// Remove deletes the entry matching both id and name and cascades to the
// entry's assignments. Removing an id that no longer exists is a no-op; the
// caller pre-checks with IDBelongsTo to report accurately.
func (s *CustomerService) Remove(id uint, name string) error {
	if err := s.repo.DeleteByIDAndName(id, name); err != nil {
		return fmt.Errorf("failed to remove customer: %w", err)
	}
	return nil
}

// FindByName retrieves every entry for a customer name in insertion order
func (s *CustomerService) FindByName(name string) ([]CustomerResponse, error) {
	customers, err := s.repo.GetByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return s.toResponses(customers), nil
}

// List retrieves all customers
func (s *CustomerService) List() ([]CustomerResponse, error) {
	customers, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return s.toResponses(customers), nil
}

// ListLate retrieves customers whose last payment is older than the late
// threshold relative to now. A payment of exactly the threshold age is on
// time.
func (s *CustomerService) ListLate(now time.Time) ([]CustomerResponse, error) {
	cutoff := now.AddDate(0, 0, -s.lateDays)
	customers, err := s.repo.GetLateSince(cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list late customers: %w", err)
	}
	return s.toResponses(customers), nil
}

// UpdateLastPayment sets a new last payment timestamp on the entry with the
// given id. The caller has already verified the id belongs to the intended
// customer.
func (s *CustomerService) UpdateLastPayment(id uint, lastPayment time.Time) error {
	if err := s.repo.UpdateLastPayment(id, lastPayment); err != nil {
		return fmt.Errorf("failed to update last payment: %w", err)
	}
	return nil
}

// Exists reports whether any entry exists for the customer name
func (s *CustomerService) Exists(name string) (bool, error) {
	return s.repo.ExistsByName(name)
}

// ExistsAt reports whether an entry exists for the (name, location) pair
func (s *CustomerService) ExistsAt(name, location string) (bool, error) {
	return s.repo.ExistsAtLocation(name, location)
}

// IDBelongsTo reports whether the id identifies an entry of the named customer
func (s *CustomerService) IDBelongsTo(id uint, name string) (bool, error) {
	return s.repo.IDBelongsTo(id, name)
}

// toResponse converts a Customer model to an operation result
func (s *CustomerService) toResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		PhoneNum:    customer.PhoneNum,
		Location:    customer.Location,
		CardNum:     customer.CardNum,
		SignUpDate:  customer.SignUpDate,
		LastPayment: customer.LastPayment,
	}
}

func (s *CustomerService) toResponses(customers []models.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = *s.toResponse(&c)
	}
	return responses
}
