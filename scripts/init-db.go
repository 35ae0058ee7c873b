package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"shop_backend/internal/config"
	"shop_backend/internal/database"
	"shop_backend/internal/models"
	"shop_backend/internal/repository"
)

// Seeds the default admin account and a small sample catalog.
func main() {
	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	if err := seedAdmin(userRepo); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
	if err := seedCatalog(itemRepo); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	log.Println("Database seeded successfully")
}

func seedAdmin(userRepo repository.UserRepository) error {
	_, err := userRepo.GetByEmail("admin@shop.local")
	if err == nil {
		log.Println("Admin user already exists")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName:     "Shop Admin",
		Email:        "admin@shop.local",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	log.Println("Admin user created: admin@shop.local / admin123")
	return nil
}

func seedCatalog(itemRepo repository.ItemRepository) error {
	count, err := itemRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return nil
	}

	items := []models.Item{
		{Name: "Blue Shirt", Description: "Classic cotton shirt", Price: 24.99, Quantity: 50, Category: models.CategoryMen},
		{Name: "Denim Jacket", Description: "Slim fit denim jacket", Price: 59.99, Quantity: 20, Category: models.CategoryMen},
		{Name: "Summer Dress", Description: "Lightweight floral dress", Price: 39.99, Quantity: 35, Category: models.CategoryWomen},
		{Name: "Silk Scarf", Description: "Hand-printed silk scarf", Price: 19.99, Quantity: 40, Category: models.CategoryAccessories},
		{Name: "Leather Belt", Description: "Full-grain leather belt", Price: 29.99, Quantity: 60, Category: models.CategoryAccessories},
	}
	for i := range items {
		if err := itemRepo.Create(&items[i]); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d catalog items", len(items))
	return nil
}
