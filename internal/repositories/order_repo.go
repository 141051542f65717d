package repositories

import (
	"jerseystore/internal/models"
)

// OrderRepository defines the interface for order data access.
// Orders are created exactly once at submission; no update or delete
// path exists.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByOrderID(orderID string) (*models.Order, error)
	Create(order *models.Order) error
}
