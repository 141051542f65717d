package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jerseystore/internal/config"
	"jerseystore/internal/models"
)

// Open connects to the configured database and runs migrations.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DatabaseDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// SeedProducts clears the catalog and inserts the sample storefront
// products. The catalog is read-only at request time, so reseeding on
// every startup keeps it consistent with the storefront assets.
func SeedProducts(db *gorm.DB) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	products := []models.Product{
		{ID: "prod1", Name: "ProFlex Running Jersey", Category: "Sporting Jerseys", Price: 49.99, Image: "image/j1.jpeg"},
		{ID: "prod2", Name: "Distressed Slim Fit Jeans", Category: "Fashionable Jeans", Price: 79.99, Image: "image/White_Jeans.jpeg"},
		{ID: "prod3", Name: "Urban Vibe Oversized T-Shirt", Category: "Trendy T-shirts", Price: 29.99, Image: "image/polo1.jpeg"},
		{ID: "prod4", Name: "Classic Pique Polo", Category: "Polo Shirts", Price: 39.99, Image: "image/polo6.jpeg"},
		{ID: "prod5", Name: "90s Graphic Vintage Tee", Category: "Vintage Shirts", Price: 59.99, Image: "image/polo8.jpeg"},
		{ID: "prod6", Name: "Sport-Tech Performance Jersey", Category: "Sporting Jerseys", Price: 54.99, Image: "image/j11.jpeg"},
		{ID: "prod7", Name: "Chelsea FC Home Jersey", Category: "Sporting Jerseys", Price: 69.99, Image: "image/Chelsea-Blue.jpeg"},
		{ID: "prod8", Name: "Manchester City Away Jersey", Category: "Sporting Jerseys", Price: 69.99, Image: "image/Mancity.jpeg"},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	log.Printf("Database seeded with %d products", len(products))
	return nil
}
