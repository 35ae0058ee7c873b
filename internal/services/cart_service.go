package services

import (
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type CartService interface {
	Add(user *models.User, itemID uint, quantity int) (*models.CartLine, error)
	List(user *models.User) ([]models.CartLine, error)
	Remove(user *models.User, lineID uint) (*models.CartLine, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{cartRepo: cartRepo, itemRepo: itemRepo}
}

func (s *cartService) Add(user *models.User, itemID uint, quantity int) (*models.CartLine, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("quantity must be at least 1")
	}

	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("item not found")
		}
		return nil, err
	}

	line := &models.CartLine{
		UserID:   user.ID,
		ItemID:   item.ID,
		Quantity: quantity,
	}
	if err := s.cartRepo.Upsert(line); err != nil {
		return nil, err
	}
	line.Item = *item
	return line, nil
}

func (s *cartService) List(user *models.User) ([]models.CartLine, error) {
	return s.cartRepo.GetByUserID(user.ID)
}

// Remove deletes the line only when it belongs to user. A line owned by
// someone else reads as not found, never as forbidden.
func (s *cartService) Remove(user *models.User, lineID uint) (*models.CartLine, error) {
	line, err := s.cartRepo.GetByIDForUser(lineID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("cart line not found")
		}
		return nil, err
	}

	if err := s.cartRepo.Delete(line.ID); err != nil {
		return nil, err
	}
	return line, nil
}
