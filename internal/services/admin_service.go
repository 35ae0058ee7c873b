package services

import (
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type Stats struct {
	UserCount  int64   `json:"user_count"`
	ItemCount  int64   `json:"item_count"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

type AdminService interface {
	GetStats() (*Stats, error)
	ListCustomers() ([]models.User, error)
	ListOrders() ([]models.Order, error)
	ListOrderItems(orderID uint) ([]models.OrderItem, error)
}

type adminService struct {
	userRepo  repository.UserRepository
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
}

func NewAdminService(userRepo repository.UserRepository, itemRepo repository.ItemRepository, orderRepo repository.OrderRepository) AdminService {
	return &adminService{userRepo: userRepo, itemRepo: itemRepo, orderRepo: orderRepo}
}

func (s *adminService) GetStats() (*Stats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	// Revenue counts completed orders only; zero when there are none.
	revenue, err := s.orderRepo.SumCompletedTotals()
	if err != nil {
		return nil, err
	}

	return &Stats{
		UserCount:  users,
		ItemCount:  items,
		OrderCount: orders,
		Revenue:    revenue,
	}, nil
}

func (s *adminService) ListCustomers() ([]models.User, error) {
	return s.userRepo.GetNonAdmins()
}

func (s *adminService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *adminService) ListOrderItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, err
	}
	return s.orderRepo.GetItemsByOrderID(orderID)
}
