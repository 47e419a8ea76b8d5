package repository

import (
	"customer-tracker/internal/database/models"

	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for product assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment. The unique index over the full
// (customer_name, customer_location, product_name, product_price) tuple
// rejects double-assignment with gorm.ErrDuplicatedKey.
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetAll retrieves all assignments
func (r *AssignmentRepository) GetAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Order("id asc").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetByCustomerName retrieves all assignments for a customer name, across
// every location the customer has entries at
func (r *AssignmentRepository) GetByCustomerName(name string) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("customer_name = ?", name).Order("id asc").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteByID deletes an assignment by id. Deleting a nonexistent id is a
// no-op; the caller pre-checks with IDExists.
func (r *AssignmentRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}

// IDExists reports whether an assignment with the id exists
func (r *AssignmentRepository) IDExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CustomerHasAny reports whether the customer name has at least one assignment
func (r *AssignmentRepository) CustomerHasAny(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).Where("customer_name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
