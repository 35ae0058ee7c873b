package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
)

type OrderRepository interface {
	// PlaceOrder persists the order and its items, decrements stock for
	// every line and clears the user's cart, all in one transaction.
	PlaceOrder(order *models.Order, lines []models.CartLine) error
	GetByID(id uint) (*models.Order, error)
	GetByUserID(userID uint) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	GetItemsByOrderID(orderID uint) ([]models.OrderItem, error)
	Count() (int64, error)
	SumCompletedTotals() (float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) PlaceOrder(order *models.Order, lines []models.CartLine) error {
	items := order.Items
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Lock each item row first so two orders against the same item
		// serialize on the stock check.
		for _, line := range lines {
			var item models.Item
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, line.ItemID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NotFound("item no longer exists")
				}
				return err
			}
			if item.Quantity < line.Quantity {
				return apperrors.Validationf("insufficient stock for item %q", item.Name)
			}
			err = tx.Model(&models.Item{}).Where("id = ?", line.ItemID).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity)).Error
			if err != nil {
				return err
			}
		}

		// Every row is written explicitly; association cascades are not
		// trusted to order the writes.
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		order.Items = items

		return tx.Where("user_id = ?", order.CustomerID).Delete(&models.CartLine{}).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUserID(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", userID).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetItemsByOrderID(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepository) SumCompletedTotals() (float64, error) {
	var total float64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}
