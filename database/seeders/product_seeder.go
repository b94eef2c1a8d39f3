package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/meera/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts a small demo catalog, skipping when products already
// exist so the seeder is safe to run repeatedly.
func SeedProducts(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("products")

	count, err := col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	demo := []interface{}{
		models.Product{
			Name:        "Silk Saree",
			Description: "Handwoven silk saree with zari border.",
			Price:       4999,
			Category:    "Women",
			SubCategory: "Sarees",
			Sizes:       []string{"Free"},
			Bestseller:  true,
			Date:        now,
		},
		models.Product{
			Name:          "Scented Candle Set",
			Description:   "Set of three soy wax candles.",
			Price:         899,
			Discount:      10,
			Offers:        true,
			Category:      "Home",
			SubCategory:   "Decor",
			Sizes:         []string{},
			GiftPackaging: true,
			GiftPackages: []models.GiftPackage{
				{Price: 199, ImageURLs: []string{}},
			},
			Date: now,
		},
		models.Product{
			Name:        "Cotton Kurta",
			Description: "Block-printed cotton kurta.",
			Price:       1299,
			Category:    "Men",
			SubCategory: "Kurtas",
			Sizes:       []string{"S", "M", "L", "XL"},
			Date:        now,
		},
	}

	_, err = col.InsertMany(ctx, demo)
	return err
}
