package main

import (
	"github.com/northcart/northcart/internal/config"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	brands := []models.Brand{
		{
			Name:        "Northwind Audio",
			Slug:        "northwind-audio",
			Description: "Headphones, speakers and everything in between.",
			IsActive:    true,
		},
		{
			Name:        "Cascade Gear",
			Slug:        "cascade-gear",
			Description: "Outdoor and travel equipment built to last.",
			IsActive:    true,
		},
		{
			Name:        "Lumen Home",
			Slug:        "lumen-home",
			Description: "Smart lighting and home accessories.",
			IsActive:    true,
		},
	}

	for _, brand := range brands {
		var existing models.Brand
		if err := models.DB.Where("slug = ?", brand.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("failed to create brand %s: %v", brand.Slug, err)
			} else {
				stdLog.Printf("created brand: %s", brand.Slug)
			}
		} else {
			stdLog.Printf("brand already exists: %s", brand.Slug)
		}
	}

	brandIDs := map[string]uint{}
	var brandList []models.Brand
	if err := models.DB.Where("slug IN ?", []string{"northwind-audio", "cascade-gear", "lumen-home"}).Find(&brandList).Error; err != nil {
		stdLog.Printf("failed to load brands: %v", err)
	}
	for _, brand := range brandList {
		brandIDs[brand.Slug] = brand.ID
	}

	audioID := brandIDs["northwind-audio"]
	gearID := brandIDs["cascade-gear"]
	homeID := brandIDs["lumen-home"]

	products := []models.Product{
		{
			SKU:         "NW-EAR-001",
			Slug:        "wireless-earphones",
			Name:        "Wireless Bluetooth Earphones",
			Description: "High quality sound, long battery life, comfortable to wear.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			Quantity:    50,
			Taxable:     true,
			IsActive:    true,
			BrandID:     &audioID,
		},
		{
			SKU:         "NW-SPK-002",
			Slug:        "bookshelf-speaker",
			Name:        "Bookshelf Speaker",
			Description: "Compact speaker with a warm, room-filling sound.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(149.50)),
			Quantity:    25,
			Taxable:     true,
			IsActive:    true,
			BrandID:     &audioID,
		},
		{
			SKU:         "CG-BAG-001",
			Slug:        "travel-backpack",
			Name:        "Travel Backpack",
			Description: "Large capacity, waterproof and anti-theft, USB charging port.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			Quantity:    40,
			Taxable:     true,
			IsActive:    true,
			BrandID:     &gearID,
		},
		{
			SKU:         "CG-BTL-002",
			Slug:        "insulated-bottle",
			Name:        "Insulated Bottle",
			Description: "Keeps drinks cold for 24 hours or hot for 12.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(24.00)),
			Quantity:    120,
			Taxable:     false,
			IsActive:    true,
			BrandID:     &gearID,
		},
		{
			SKU:         "LH-LMP-001",
			Slug:        "smart-lamp",
			Name:        "Smart Table Lamp",
			Description: "Dimmable lamp with schedules and app control.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45.25)),
			Quantity:    60,
			Taxable:     true,
			IsActive:    true,
			BrandID:     &homeID,
		},
		{
			SKU:         "LH-PLG-002",
			Slug:        "smart-plug",
			Name:        "Smart Plug",
			Description: "Meter your appliances and switch them remotely.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
			Quantity:    200,
			Taxable:     true,
			IsActive:    true,
			BrandID:     &homeID,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("product already exists: %s", product.Slug)
		}
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("failed to initialize default admin: %v", err)
	}

	stdLog.Printf("seed finished")
}
