package repository

import (
	"customer-tracker/internal/database/models"

	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product. The unique index on (product, price) rejects
// duplicates with gorm.ErrDuplicatedKey even if the caller skipped its
// existence pre-check.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetByName retrieves all entries for a product name, ordered by insertion.
// A product may have several entries, one per price point.
func (r *ProductRepository) GetByName(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("product = ?", name).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetAll retrieves all products
func (r *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.db.Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// UpdatePrice sets a new price for a product entry and carries the new price
// into all assignments referencing the old (product, price) pair, in one
// transaction. Assignments follow the product they reference.
func (r *ProductRepository) UpdatePrice(id uint, price float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.First(&product, "id = ?", id).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		oldPrice := product.Price
		if err := tx.Model(&product).Update("price", price).Error; err != nil {
			return err
		}

		return tx.Model(&models.Assignment{}).
			Where("product_name = ? AND product_price = ?", product.Name, oldPrice).
			Update("product_price", price).Error
	})
}

// DeleteByIDAndName deletes the product entry matching both id and name, and
// all assignments referencing its (product, price) pair, in one transaction.
// Deleting a nonexistent entry is a no-op.
func (r *ProductRepository) DeleteByIDAndName(id uint, name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		err := tx.First(&product, "id = ? AND product = ?", id, name).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}

		if err := tx.Where("product_name = ? AND product_price = ?",
			product.Name, product.Price).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
}

// ExistsByName reports whether any entry exists for the product name
func (r *ProductRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Where("product = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsWithPrice reports whether an entry exists for the (product, price) pair
func (r *ProductRepository) ExistsWithPrice(name string, price float64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("product = ? AND price = ?", name, price).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IDBelongsTo reports whether the id identifies an entry of the named product
func (r *ProductRepository) IDBelongsTo(id uint, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("id = ? AND product = ?", id, name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
