package services_test

import (
	"fmt"
	"testing"

	"elektronik/internal/models"
	"elektronik/internal/services"

	"github.com/shopspring/decimal"
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

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByName(name string) (*models.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id string, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) IncrementStock(id string, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: decimal.RequireFromString("10.00"), Stock: 100},
		{ID: "2", Name: "Product B", Price: decimal.RequireFromString("20.00"), Stock: 50},
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

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: decimal.RequireFromString("10.00"), Stock: 100}

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, &models.ProductNotFoundError{ProductID: "99"}).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Monitor A", Category: "monitors", Price: decimal.RequireFromString("199.99"), Stock: 3},
	}

	mockRepo.On("GetByCategory", "monitors").Return(expectedProducts, nil).Once()

	products, err := service.GetProductsByCategory("monitors")
	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Product", Price: decimal.RequireFromString("50.00"), Stock: 20}

	// Test successful creation
	mockRepo.On("GetByName", "New Product").Return(nil, fmt.Errorf("product named %q: %w", "New Product", models.ErrNotFound)).Once()
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("GetByName", "New Product").Return(nil, fmt.Errorf("product named %q: %w", "New Product", models.ErrNotFound)).Once()
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Existing Product", Price: decimal.RequireFromString("50.00"), Stock: 20}
	existing := &models.Product{ID: "1", Name: "Existing Product", Price: decimal.RequireFromString("45.00"), Stock: 5}

	mockRepo.On("GetByName", "Existing Product").Return(existing, nil).Once()

	err := service.CreateProduct(newProduct)
	assert.Error(t, err)
	var conflictErr *models.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_InvalidInput(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	var validationErr *models.ValidationError

	// Empty name
	err := service.CreateProduct(&models.Product{Name: "   ", Price: decimal.RequireFromString("10.00")})
	assert.ErrorAs(t, err, &validationErr)

	// Negative price
	err = service.CreateProduct(&models.Product{Name: "Valid Name", Price: decimal.RequireFromString("-1.00")})
	assert.ErrorAs(t, err, &validationErr)

	// Negative stock
	err = service.CreateProduct(&models.Product{Name: "Valid Name", Price: decimal.RequireFromString("1.00"), Stock: -3})
	assert.ErrorAs(t, err, &validationErr)

	// No repository interaction for invalid input
	mockRepo.AssertNotCalled(t, "GetByName", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	updatedProduct := &models.Product{ID: "1", Name: "Product A Updated", Price: decimal.RequireFromString("12.00"), Stock: 95}

	// Test successful update
	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update failure (product not found in repo)
	missing := &models.Product{ID: "99", Name: "NonExistent", Price: decimal.RequireFromString("1.00"), Stock: 1}
	mockRepo.On("Update", missing).Return(&models.ProductNotFoundError{ProductID: "99"}).Once()
	err = service.UpdateProduct(missing)
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)

	// Negative price rejected before the repository is touched
	err = service.UpdateProduct(&models.Product{ID: "1", Name: "Product A", Price: decimal.RequireFromString("-5.00")})
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (product not found)
	mockRepo.On("Delete", "99").Return(&models.ProductNotFoundError{ProductID: "99"}).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
