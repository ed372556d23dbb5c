package repositories

import (
	"elektronik/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// DecrementStock must be serialized per product: two concurrent calls for the
// last units must not both succeed. Implementations use a compare-and-set
// (stock >= quantity at decrement time) or an equivalent critical section.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	GetByCategory(category string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	DecrementStock(id string, quantity int) error
	IncrementStock(id string, quantity int) error
}
