package repositories

import (
	"elektronik/internal/models"
)

// OrderRepository defines the interface for order data access.
// Create persists an order together with its items as one atomic unit.
// Orders are never deleted; UpdateStatus is the only post-creation mutation.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
}
