package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GiftPackage is a priced product add-on with its own images, cross-indexed
// by position against the uploaded gift image files.
type GiftPackage struct {
	Price     float64  `bson:"price" json:"price"`
	ImageURLs []string `bson:"imageUrl" json:"imageUrl"`
}

// Product is a catalogue item.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          float64            `bson:"price" json:"price"`
	Discount       float64            `bson:"discount" json:"discount"`
	Images         []string           `bson:"images" json:"images"`
	Category       string             `bson:"category" json:"category"`
	SubCategory    string             `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	SubSubCategory string             `bson:"subSubCategory,omitempty" json:"subSubCategory,omitempty"`
	Sizes          []string           `bson:"sizes" json:"sizes"`
	Bestseller     bool               `bson:"bestseller" json:"bestseller"`
	Offers         bool               `bson:"offers" json:"offers"`
	GiftPackaging  bool               `bson:"giftPackaging" json:"giftPackaging"`
	GiftPackages   []GiftPackage      `bson:"giftPackages,omitempty" json:"giftPackages,omitempty"`
	Date           int64              `bson:"date" json:"date"` // unix ms
}
