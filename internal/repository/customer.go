package repository

import (
	"time"

	"customer-tracker/internal/database/models"

	"gorm.io/gorm"
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer. The unique index on (name, location) rejects
// duplicates with gorm.ErrDuplicatedKey even if the caller skipped its
// existence pre-check.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// GetByName retrieves all entries for a customer name, ordered by insertion.
// A customer may have several entries, one per location.
func (r *CustomerRepository) GetByName(name string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("name = ?", name).Order("id asc").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetAll retrieves all customers
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Order("id asc").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetLateSince retrieves customers whose last payment is strictly before the
// cutoff. A payment made exactly at the cutoff is not late.
func (r *CustomerRepository) GetLateSince(cutoff time.Time) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("last_payment < ?", cutoff).Order("id asc").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// UpdateLastPayment sets the last payment timestamp for a customer entry by
// id. Updating zero rows is not an error; the caller pre-checks the id.
func (r *CustomerRepository) UpdateLastPayment(id uint, lastPayment time.Time) error {
	return r.db.Model(&models.Customer{}).Where("id = ?", id).
		Update("last_payment", lastPayment).Error
}

// DeleteByIDAndName deletes the customer entry matching both id and name, and
// all assignments referencing its (name, location) pair, in one transaction.
// Matching on the pair guards against a stale id pointing at another customer.
// Deleting a nonexistent entry is a no-op.
func (r *CustomerRepository) DeleteByIDAndName(id uint, name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		err := tx.First(&customer, "id = ? AND name = ?", id, name).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		if err := tx.Where("customer_name = ? AND customer_location = ?",
			customer.Name, customer.Location).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&customer).Error
	})
}

// ExistsByName reports whether any entry exists for the customer name
func (r *CustomerRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsAtLocation reports whether an entry exists for the (name, location) pair
func (r *CustomerRepository) ExistsAtLocation(name, location string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).
		Where("name = ? AND location = ?", name, location).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IDBelongsTo reports whether the id identifies an entry of the named customer
func (r *CustomerRepository) IDBelongsTo(id uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).
		Where("id = ? AND name = ?", id, name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
