package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jerseystore/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
// Line items are persisted as a JSON blob in the items column; the
// blob is a snapshot of the cart at purchase time and is never joined
// back to the catalog.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders, items deserialized.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	for i := range orders {
		if err := unmarshalItems(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// GetByOrderID retrieves a single order by its public order identifier.
// A malformed stored item blob surfaces as ErrMalformedItems, never as
// an empty item list.
func (r *GORMOrderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, models.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", orderID, err)
	}
	if err := unmarshalItems(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Create persists a new order, serializing its items. A duplicate
// order identifier violates the unique index and surfaces here as a
// storage error.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	blob, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to serialize items for order %s: %w", order.OrderID, err)
	}
	order.ItemsJSON = string(blob)

	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.OrderID, err)
	}
	return nil
}

func unmarshalItems(order *models.Order) error {
	if err := json.Unmarshal([]byte(order.ItemsJSON), &order.Items); err != nil {
		return fmt.Errorf("order %s: %w: %v", order.OrderID, models.ErrMalformedItems, err)
	}
	return nil
}
