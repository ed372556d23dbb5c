package services

import (
	"errors"
	"strings"

	"elektronik/internal/models"
	"elektronik/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductsByCategory retrieves all products within a category.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	return s.repo.GetByCategory(category)
}

// CreateProduct creates a new product. The name must be non-empty and unique
// across the catalog; the price must be non-negative.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return &models.ValidationError{Message: "product name is required"}
	}
	if product.Price.IsNegative() {
		return &models.ValidationError{Message: "product price must be >= 0"}
	}
	if product.Stock < 0 {
		return &models.ValidationError{Message: "product stock must be >= 0"}
	}

	existing, err := s.repo.GetByName(product.Name)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if existing != nil {
		return &models.ConflictError{Message: "product with the same name already exists"}
	}

	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Price.IsNegative() {
		return &models.ValidationError{Message: "product price must be >= 0"}
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID. Deletion is unconditional:
// order items referencing the product keep their frozen name and price.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
