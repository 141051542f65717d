package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"jerseystore/internal/models"
	"jerseystore/internal/repositories"
)

// EventPublisher publishes order events for background processing.
// Both the RabbitMQ client and the in-process notification worker
// satisfy it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService handles the order fulfillment flow.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its public order identifier,
// items deserialized.
func (s *OrderService) GetOrderByID(orderID string) (*models.Order, error) {
	return s.orderRepo.GetByOrderID(orderID)
}

// PlaceOrder validates the cart, persists the order and hands the
// order-created event off for notification dispatch.
//
// Subtotals and the order total are recomputed server-side from unit
// price and quantity; client-supplied amounts are never trusted. A
// publish failure is logged but does not fail the request: the order
// is placed regardless of notification outcome.
func (s *OrderService) PlaceOrder(req *models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrCartEmpty
	}

	items := make([]models.OrderItem, len(req.Items))
	var total float64
	for i, item := range req.Items {
		item.Subtotal = item.Price * float64(item.Quantity)
		total += item.Subtotal
		items[i] = item
	}
	if req.TotalAmount != 0 && math.Abs(req.TotalAmount-total) > 0.005 {
		log.Printf("Warning: client total %.2f does not match computed total %.2f, using computed", req.TotalAmount, total)
	}

	order := &models.Order{
		OrderID:         GenerateOrderID(),
		Items:           items,
		TotalAmount:     total,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		City:            req.City,
		ZipCode:         req.ZipCode,
		Country:         req.Country,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusReceived,
		CreatedAt:       time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping notification dispatch.")
		return
	}

	event := models.OrderCreatedEvent{
		OrderID:       order.OrderID,
		CustomerEmail: order.CustomerEmail,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.publisher.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.OrderID, err)
	} else {
		log.Printf("Published order created event for order %s", order.OrderID)
	}
}
