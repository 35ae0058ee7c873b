package repository

import (
	"strings"

	"shop_backend/internal/models"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	GetAll() ([]models.Item, error)
	GetByCategory(category string) ([]models.Item, error)
	SearchByName(query string) ([]models.Item, error)
	Count() (int64, error)
	Update(item *models.Item) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Find(&items).Error
	return items, err
}

func (r *itemRepository) GetByCategory(category string) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (r *itemRepository) SearchByName(query string) ([]models.Item, error) {
	var items []models.Item
	err := r.db.Where("name ILIKE ?", "%"+escapeLike(query)+"%").Find(&items).Error
	return items, err
}

// escapeLike neutralizes LIKE wildcards in user input so they match
// literally inside the pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

func (r *itemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Item{}).Count(&count).Error
	return count, err
}

func (r *itemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}
