package services

import (
	"log"
	"time"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/events"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type OrderService interface {
	PlaceOrder(user *models.User, customerName, customerPhone, customerAddress string) (*models.Order, error)
	GetOrdersByUser(user *models.User) ([]models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	publisher events.Publisher
}

// NewOrderService wires the order flow. publisher may be nil when event
// streaming is disabled.
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, publisher events.Publisher) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, publisher: publisher}
}

// PlaceOrder converts the user's cart into an order. Stock decrements,
// order rows and the cart clear commit atomically in the repository;
// line prices are snapshotted here and never recomputed.
func (s *orderService) PlaceOrder(user *models.User, customerName, customerPhone, customerAddress string) (*models.Order, error) {
	if customerName == "" {
		return nil, apperrors.Validation("customer name is required")
	}

	lines, err := s.cartRepo.GetByUserID(user.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		total += float64(line.Quantity) * line.Item.Price
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	if total <= 0 {
		return nil, apperrors.Validation("order total must be positive")
	}

	order := &models.Order{
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerAddress: customerAddress,
		Status:          models.OrderPending,
		TotalAmount:     total,
		OrderDate:       time.Now(),
		CustomerID:      user.ID,
		Items:           orderItems,
	}

	if err := s.orderRepo.PlaceOrder(order, lines); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderPlaced(order); err != nil {
			// Best effort: the order is already committed.
			log.Printf("Failed to publish order event for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *orderService) GetOrdersByUser(user *models.User) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(user.ID)
}
