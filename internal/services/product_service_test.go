package services_test

import (
	"testing"

	"katalog/internal/apperror"
	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Product A", Description: "First", Code: "A-001"},
		{ID: 2, Name: "Product B", Description: "Second", Code: "B-002"},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: 1, Name: "Product A", Description: "First", Code: "A-001"}

	// Successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Product not found
	mockRepo.On("GetByID", uint(99)).Return(nil, apperror.NewNotFound("product with ID 99 not found")).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, apperror.IsNotFound(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Product", Description: "Fresh", Code: "NEW-1"}

	// Successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Colliding code surfaces as a conflict with the column name
	mockRepo.On("Create", newProduct).Return(apperror.NewUniqueViolation("code", nil)).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	column, ok := apperror.AsUniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "code", column)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Partial update leaves absent fields untouched
	existing := &models.Product{ID: 1, Name: "Product A", Description: "First", Code: "A-001"}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 1 && p.Name == "Product A Updated" && p.Description == "First" && p.Code == "A-001"
	})).Return(nil).Once()

	updated, err := service.UpdateProduct(1, services.ProductUpdate{Name: strPtr("Product A Updated")})
	assert.NoError(t, err)
	assert.Equal(t, "Product A Updated", updated.Name)
	assert.Equal(t, "First", updated.Description)
	assert.Equal(t, "A-001", updated.Code)
	mockRepo.AssertExpectations(t)

	// Missing row
	mockRepo.On("GetByID", uint(99)).Return(nil, apperror.NewNotFound("product with ID 99 not found")).Once()
	updated, err = service.UpdateProduct(99, services.ProductUpdate{Name: strPtr("Whatever")})
	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, apperror.IsNotFound(err))
	mockRepo.AssertExpectations(t)

	// Code collision on update
	existing = &models.Product{ID: 2, Name: "Product B", Description: "Second", Code: "B-002"}
	mockRepo.On("GetByID", uint(2)).Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).
		Return(apperror.NewUniqueViolation("code", nil)).Once()
	_, err = service.UpdateProduct(2, services.ProductUpdate{Code: strPtr("A-001")})
	assert.Error(t, err)
	_, ok := apperror.AsUniqueViolation(err)
	assert.True(t, ok)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Successful deletion returns the deleted row
	existing := &models.Product{ID: 1, Name: "Product A", Description: "First", Code: "A-001"}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil).Once()
	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	deleted, err := service.DeleteProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, existing, deleted)
	mockRepo.AssertExpectations(t)

	// Missing row
	mockRepo.On("GetByID", uint(99)).Return(nil, apperror.NewNotFound("product with ID 99 not found")).Once()
	deleted, err = service.DeleteProduct(99)
	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.True(t, apperror.IsNotFound(err))
	mockRepo.AssertExpectations(t)
}
