package repositories

import (
	"errors"
	"fmt"

	"katalog/internal/apperror"
	"katalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// The DB must be opened with TranslateError so driver duplicate-key errors
// surface as gorm.ErrDuplicatedKey instead of driver-specific text.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products in id order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, apperror.NewInternal("failed to get all products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound(fmt.Sprintf("product with ID %d not found", id))
		}
		return nil, apperror.NewInternal(fmt.Sprintf("failed to get product by ID %d", id), err)
	}
	return &product, nil
}

// Create inserts a new product. Code collisions come back as a conflict
// carrying the column name.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.NewUniqueViolation("code", err)
		}
		return apperror.NewInternal("failed to create product", err)
	}
	return nil
}

// Update saves all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperror.NewUniqueViolation("code", res.Error)
		}
		return apperror.NewInternal("failed to update product", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row.
		return apperror.NewNotFound(fmt.Sprintf("product with ID %d not found for update", product.ID))
	}
	return nil
}

// Delete physically removes a product by its ID.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperror.NewInternal("failed to delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFound(fmt.Sprintf("product with ID %d not found for deletion", id))
	}
	return nil
}
