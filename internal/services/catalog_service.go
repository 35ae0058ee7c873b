package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/cache"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

type CatalogService interface {
	ListItems() ([]models.Item, error)
	ListByCategory(category string) ([]models.Item, error)
	GetItem(id uint) (*models.Item, error)
	SearchItems(query string) ([]models.Item, error)
	CreateItem(name, description string, price float64, quantity int, category, imageName string) (*models.Item, error)
}

type catalogService struct {
	itemRepo repository.ItemRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

func NewCatalogService(itemRepo repository.ItemRepository, cacheClient *cache.Client, cacheTTL time.Duration) CatalogService {
	return &catalogService{itemRepo: itemRepo, cache: cacheClient, cacheTTL: cacheTTL}
}

func (s *catalogService) ListItems() ([]models.Item, error) {
	if items, ok := s.cache.GetItems("all"); ok {
		return items, nil
	}

	items, err := s.itemRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetItems("all", items, s.cacheTTL); err != nil {
		log.Printf("Failed to cache catalog listing: %v", err)
	}
	return items, nil
}

func (s *catalogService) ListByCategory(category string) ([]models.Item, error) {
	if !models.ValidCategory(category) {
		return nil, apperrors.Validationf("unknown category %q", category)
	}

	if items, ok := s.cache.GetItems("category:" + category); ok {
		return items, nil
	}

	items, err := s.itemRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetItems("category:"+category, items, s.cacheTTL); err != nil {
		log.Printf("Failed to cache category listing: %v", err)
	}
	return items, nil
}

func (s *catalogService) GetItem(id uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *catalogService) SearchItems(query string) ([]models.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("search query is required")
	}
	return s.itemRepo.SearchByName(query)
}

func (s *catalogService) CreateItem(name, description string, price float64, quantity int, category, imageName string) (*models.Item, error) {
	if name == "" {
		return nil, apperrors.Validation("item name is required")
	}
	if price < 0 {
		return nil, apperrors.Validation("price must not be negative")
	}
	if quantity < 0 {
		return nil, apperrors.Validation("quantity must not be negative")
	}
	if !models.ValidCategory(category) {
		return nil, apperrors.Validationf("unknown category %q", category)
	}

	item := &models.Item{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		ImageName:   imageName,
	}
	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateItems(); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
	return item, nil
}
