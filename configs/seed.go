package configs

import (
	"log"

	"github.com/Fryupi/magazin/entity"
)

// SeedCategories fills the catalog with a starter set on first boot.
func SeedCategories() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "Electronics", Description: "Phones, laptops and accessories"},
		{Name: "Clothing", Description: "Apparel and footwear"},
		{Name: "Books", Description: "Printed and audio books"},
		{Name: "Home & Garden", Description: "Furniture, tools and decor"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	log.Printf("seeded %d categories", len(categories))
	return nil
}
