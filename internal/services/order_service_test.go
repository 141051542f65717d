package services_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jerseystore/internal/models"
	"jerseystore/internal/services"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderID(orderID string) (*models.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func validOrderRequest() *models.OrderRequest {
	return &models.OrderRequest{
		Items: []models.OrderItem{
			{ID: "prod1", Name: "ProFlex Running Jersey", Price: 49.99, Quantity: 2, Image: "image/j1.jpeg"},
			{ID: "prod4", Name: "Classic Pique Polo", Price: 39.99, Quantity: 1, Image: "image/polo6.jpeg"},
		},
		TotalAmount:   139.97,
		CustomerName:  "Ada Obi",
		CustomerEmail: "ada@example.com",
		PaymentMethod: "card",
	}
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub)

	req := validOrderRequest()
	req.Items = nil

	order, err := service.PlaceOrder(req)
	assert.ErrorIs(t, err, models.ErrCartEmpty)
	assert.Nil(t, order)
	// Rejection happens before any persistence.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPub.On("Publish", "order", "order.created", mock.Anything).Return(nil).Once()

	order, err := service.PlaceOrder(validOrderRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Regexp(t, `^JS-\d+-\d{3}$`, order.OrderID)
	assert.Equal(t, models.OrderStatusReceived, order.Status)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 99.98, order.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 39.99, order.Items[1].Subtotal, 0.001)
	assert.InDelta(t, 139.97, order.TotalAmount, 0.001)

	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_RecomputesClientSubtotals(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	req := validOrderRequest()
	// Client-supplied subtotal and total are nonsense and must be ignored.
	req.Items[0].Subtotal = 1.00
	req.Items[1].Subtotal = 2.00
	req.TotalAmount = 3.00

	order, err := service.PlaceOrder(req)
	require.NoError(t, err)

	assert.InDelta(t, 99.98, order.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 39.99, order.Items[1].Subtotal, 0.001)
	assert.InDelta(t, 139.97, order.TotalAmount, 0.001)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_StorageFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub)

	mockRepo.On("Create", mock.Anything).Return(fmt.Errorf("database error")).Once()

	order, err := service.PlaceOrder(validOrderRequest())
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "database error")
	// No event is published for an order that was never persisted.
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_PublishFailureIsNonFatal(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()
	mockPub.On("Publish", "order", "order.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	order, err := service.PlaceOrder(validOrderRequest())
	assert.NoError(t, err)
	assert.NotNil(t, order)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_PublishesEventBody(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockRepo, mockPub)

	mockRepo.On("Create", mock.Anything).Return(nil).Once()

	var published []byte
	mockPub.On("Publish", "order", "order.created", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(2).([]byte)
	}).Return(nil).Once()

	order, err := service.PlaceOrder(validOrderRequest())
	require.NoError(t, err)

	var event models.OrderCreatedEvent
	require.NoError(t, json.Unmarshal(published, &event))
	assert.Equal(t, order.OrderID, event.OrderID)
	assert.Equal(t, "ada@example.com", event.CustomerEmail)
	assert.Equal(t, models.OrderStatusReceived, event.Status)
	assert.InDelta(t, order.TotalAmount, event.TotalAmount, 0.001)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	expected := &models.Order{OrderID: "JS-1-100", CustomerName: "Ada Obi"}
	mockRepo.On("GetByOrderID", "JS-1-100").Return(expected, nil).Once()

	order, err := service.GetOrderByID("JS-1-100")
	assert.NoError(t, err)
	assert.Equal(t, expected, order)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByOrderID", "missing").Return(nil, fmt.Errorf("order missing: %w", models.ErrOrderNotFound)).Once()
	order, err = service.GetOrderByID("missing")
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	assert.Nil(t, order)
	mockRepo.AssertExpectations(t)
}
