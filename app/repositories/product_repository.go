package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/meera/app/models"
)

// ProductRepository handles the products collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// Create persists a new product and returns its hex id.
func (r *ProductRepository) Create(ctx context.Context, product models.Product) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("products: insert: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// All returns every product.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// FindByID looks up a product by hex id. Returns ErrNotFound when absent.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var product models.Product
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("products: find by id: %w", err)
	}
	return product, nil
}

// Update overwrites the mutable fields of a product.
// Returns ErrNotFound when the id matches nothing.
func (r *ProductRepository) Update(ctx context.Context, id string, product models.Product) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.D{
		{Key: "name", Value: product.Name},
		{Key: "description", Value: product.Description},
		{Key: "price", Value: product.Price},
		{Key: "discount", Value: product.Discount},
		{Key: "category", Value: product.Category},
		{Key: "subCategory", Value: product.SubCategory},
		{Key: "subSubCategory", Value: product.SubSubCategory},
		{Key: "sizes", Value: product.Sizes},
		{Key: "bestseller", Value: product.Bestseller},
		{Key: "offers", Value: product.Offers},
		{Key: "giftPackaging", Value: product.GiftPackaging},
	}
	// Images are replaced only when the caller uploaded new ones.
	if len(product.Images) > 0 {
		set = append(set, bson.E{Key: "images", Value: product.Images})
	}

	result, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return fmt.Errorf("products: update: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product by id. Returns ErrNotFound when nothing matched.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
