package repository

import (
	"shop_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	Upsert(line *models.CartLine) error
	GetByUserID(userID uint) ([]models.CartLine, error)
	GetByIDForUser(id, userID uint) (*models.CartLine, error)
	Delete(id uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Upsert inserts the line, or bumps the quantity when the user already
// has that item in the cart. The returning clause scans the persisted
// row back into line, so callers see the merged quantity.
func (r *cartRepository) Upsert(line *models.CartLine) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart.quantity + ?", line.Quantity),
		}),
	}, clause.Returning{}).Create(line).Error
}

func (r *cartRepository) GetByUserID(userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.Preload("Item").Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

func (r *cartRepository) GetByIDForUser(id, userID uint) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.Preload("Item").Where("id = ? AND user_id = ?", id, userID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartLine{}, id).Error
}
