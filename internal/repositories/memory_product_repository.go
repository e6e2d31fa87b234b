package repositories

import (
	"fmt"
	"sort"
	"sync"

	"katalog/internal/apperror"
	"katalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository
// with the same error semantics as the GORM one. Used by tests and local runs
// without a database.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products in id order.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperror.NewNotFound(fmt.Sprintf("product with ID %d not found", id))
	}
	return &product, nil
}

// Create adds a new product, assigning the next free ID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkCode(product.Code, 0); err != nil {
		return err
	}
	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return apperror.NewNotFound(fmt.Sprintf("product with ID %d not found for update", product.ID))
	}
	if err := r.checkCode(product.Code, product.ID); err != nil {
		return err
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperror.NewNotFound(fmt.Sprintf("product with ID %d not found for deletion", id))
	}
	delete(r.products, id)
	return nil
}

// checkCode enforces code uniqueness across rows other than self.
// Caller must hold the lock.
func (r *MemoryProductRepository) checkCode(code string, self uint) error {
	for id, p := range r.products {
		if id != self && p.Code == code {
			return apperror.NewUniqueViolation("code", nil)
		}
	}
	return nil
}
