package repositories

import (
	"katalog/internal/models"
)

// ProductRepository defines the interface for product data access.
// Absent rows surface as apperror.NotFound, uniqueness violations as
// apperror conflicts carrying the column name.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
