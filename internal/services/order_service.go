package services

import (
	"fmt"
	"log"
	"time"

	"elektronik/internal/models"
	"elektronik/internal/repositories"
	"elektronik/pkg/rabbitmq"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderService converts a validated cart into a persisted order while
// enforcing stock and pricing invariants.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client // nil disables event publishing
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
		validate:    validator.New(),
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersByUser retrieves all orders placed by a user.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// PlaceOrder validates every line of the request against the catalog, then
// commits: decrement stock per line and persist the order with its items.
// The flow is all-or-nothing. Validation failures abort with zero mutation;
// a decrement or persistence failure after partial commit restocks every
// line already taken before reporting the error.
func (s *OrderService) PlaceOrder(req models.PlaceOrderRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &models.ValidationError{Message: fmt.Sprintf("invalid order request: %v", err)}
	}

	// Pass one: read-only validation. Freeze each line's unit price and
	// accumulate the total with exact decimal arithmetic.
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, &models.InsufficientStockError{
				ProductID: line.ProductID,
				Requested: line.Quantity,
				Available: product.Stock,
			}
		}
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price, // Unit price frozen at order time
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Pass two: commit. Each decrement is a serialized compare-and-set in
	// the repository, so a concurrent order racing for the same units fails
	// here even though it passed the read-only check above.
	for i, line := range req.Items {
		if err := s.productRepo.DecrementStock(line.ProductID, line.Quantity); err != nil {
			s.restock(req.Items[:i])
			return nil, err
		}
	}

	now := time.Now()
	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Items:           items,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		s.restock(req.Items)
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent(rabbitmq.OrderCreatedKey, map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
	})

	return order, nil
}

// restock returns already-decremented units after a failed commit.
func (s *OrderService) restock(lines []models.OrderLineRequest) {
	for _, line := range lines {
		if err := s.productRepo.IncrementStock(line.ProductID, line.Quantity); err != nil {
			log.Printf("Failed to restock product %s after aborted order: %v", line.ProductID, err)
		}
	}
}

// UpdateOrderStatus sets the status of an existing order. Any recognized
// status may replace any other; there is no transition graph. Setting the
// same status twice is a harmless no-op. Cancelling does not restock.
func (s *OrderService) UpdateOrderStatus(id string, rawStatus string) error {
	status, err := models.ParseOrderStatus(rawStatus)
	if err != nil {
		return err
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}

	s.publishEvent(rabbitmq.OrderStatusUpdatedKey, map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	return nil
}

// publishEvent sends an order event to RabbitMQ. Publishing is best-effort:
// a broker failure is logged but never fails the operation that triggered it.
func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
