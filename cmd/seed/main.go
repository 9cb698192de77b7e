package main

import (
	"fmt"

	"github.com/feastline-api/internal/config"
	"github.com/feastline-api/internal/logger"
	"github.com/feastline-api/internal/models"

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

	categories := []models.Category{
		{Name: "Pizza", Image: "categories/pizza.jpg", SortOrder: 300},
		{Name: "Burgers", Image: "categories/burgers.jpg", SortOrder: 280},
		{Name: "Salads", Image: "categories/salads.jpg", SortOrder: 260},
		{Name: "Desserts", Image: "categories/desserts.jpg", SortOrder: 240},
		{Name: "Drinks", Image: "categories/drinks.jpg", SortOrder: 220},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	chefs := []models.Chef{
		{Name: "Marco Bellini", Bio: "Twenty years of Neapolitan wood-fired ovens.", Image: "chefs/marco.jpg", Specialty: "Pizza"},
		{Name: "Aisha Rahman", Bio: "Street-food champion turned burger artist.", Image: "chefs/aisha.jpg", Specialty: "Burgers"},
		{Name: "Elena Petrova", Bio: "Pastry chef with a weakness for dark chocolate.", Image: "chefs/elena.jpg", Specialty: "Desserts"},
	}

	chefIDs := map[string]uint{}
	for _, chef := range chefs {
		var existing models.Chef
		if err := models.DB.Where("name = ?", chef.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&chef).Error; err != nil {
				stdLog.Printf("Failed to create chef %s: %v", chef.Name, err)
				continue
			}
			stdLog.Printf("Created chef: %s", chef.Name)
			chefIDs[chef.Name] = chef.ID
		} else {
			chefIDs[chef.Name] = existing.ID
			stdLog.Printf("Chef already exists: %s", chef.Name)
		}
	}

	marcoID := chefIDs["Marco Bellini"]
	aishaID := chefIDs["Aisha Rahman"]
	elenaID := chefIDs["Elena Petrova"]

	catID := func(name string) *uint {
		id, ok := categoryIDs[name]
		if !ok || id == 0 {
			return nil
		}
		return &id
	}

	products := []models.Product{
		{
			Name:        "Margherita",
			Description: "San Marzano tomatoes, fior di latte, fresh basil.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(11.50)),
			CategoryID:  catID("Pizza"),
			ChefID:      &marcoID,
			Image:       "products/margherita.jpg",
			IsAvailable: true,
			SortOrder:   300,
		},
		{
			Name:        "Diavola",
			Description: "Spicy salami, chili oil, smoked mozzarella.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(13.90)),
			CategoryID:  catID("Pizza"),
			ChefID:      &marcoID,
			Image:       "products/diavola.jpg",
			IsAvailable: true,
			SortOrder:   290,
		},
		{
			Name:        "Classic Smash Burger",
			Description: "Double beef patty, cheddar, pickles, house sauce.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(9.90)),
			CategoryID:  catID("Burgers"),
			ChefID:      &aishaID,
			Image:       "products/smash-burger.jpg",
			IsAvailable: true,
			SortOrder:   280,
		},
		{
			Name:        "Caesar Salad",
			Description: "Romaine, grilled chicken, parmesan, croutons.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(8.50)),
			CategoryID:  catID("Salads"),
			Image:       "products/caesar.jpg",
			IsAvailable: true,
			SortOrder:   260,
		},
		{
			Name:        "Chocolate Fondant",
			Description: "Warm chocolate cake with a molten center.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(6.20)),
			CategoryID:  catID("Desserts"),
			ChefID:      &elenaID,
			Image:       "products/fondant.jpg",
			IsAvailable: true,
			SortOrder:   240,
		},
		{
			Name:        "Fresh Lemonade",
			Description: "Squeezed to order with mint.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(3.50)),
			CategoryID:  catID("Drinks"),
			Image:       "products/lemonade.jpg",
			IsAvailable: true,
			SortOrder:   220,
		},
		{
			Name:        "Seasonal Special",
			Description: "Currently off the menu.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(14.00)),
			CategoryID:  catID("Pizza"),
			Image:       "products/seasonal.jpg",
			IsAvailable: false,
			SortOrder:   100,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == nil {
			stdLog.Printf("Skip product %s: category missing", prod.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.CategoryID = prod.CategoryID
			existing.ChefID = prod.ChefID
			existing.Image = prod.Image
			existing.IsAvailable = prod.IsAvailable
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	ads := []models.Ad{
		{
			Title:     "Two for One Tuesday",
			Image:     "ads/two-for-one.jpg",
			TargetURL: "/products?category_id=1",
			IsActive:  true,
			SortOrder: 300,
		},
		{
			Title:     "Free Delivery Weekend",
			Image:     "ads/free-delivery.jpg",
			TargetURL: "/products",
			IsActive:  true,
			SortOrder: 280,
		},
		{
			Title:     "Draft Campaign",
			Image:     "ads/draft.jpg",
			TargetURL: "",
			IsActive:  false,
			SortOrder: 100,
		},
	}

	for _, ad := range ads {
		var existing models.Ad
		if err := models.DB.Where("title = ?", ad.Title).First(&existing).Error; err != nil {
			if err := models.DB.Select("*").Create(&ad).Error; err != nil {
				stdLog.Printf("Failed to create ad %s: %v", ad.Title, err)
			} else {
				stdLog.Printf("Created ad: %s", ad.Title)
			}
		} else {
			existing.Image = ad.Image
			existing.TargetURL = ad.TargetURL
			existing.IsActive = ad.IsActive
			existing.SortOrder = ad.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update ad %s: %v", ad.Title, err)
			} else {
				stdLog.Printf("Updated ad: %s", ad.Title)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 5 Categories")
	fmt.Println("- 3 Chefs")
	fmt.Println("- 7 Products (1 unavailable)")
	fmt.Println("- 3 Ads (1 inactive)")
}
