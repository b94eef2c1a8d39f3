package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/meera/app/models"
)

// PostRepository handles the posts collection.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Create persists a new post and returns it with its id set.
func (r *PostRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("posts: insert: %w", err)
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return post, nil
}

// All returns every post.
func (r *PostRepository) All(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("posts: find: %w", err)
	}

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("posts: decode: %w", err)
	}
	return posts, nil
}

// FindByID looks up a post by hex id. Returns ErrNotFound when absent.
func (r *PostRepository) FindByID(ctx context.Context, id string) (models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var post models.Post
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("posts: find by id: %w", err)
	}
	return post, nil
}

// Update replaces the mutable fields of a post and returns the updated
// document. Returns ErrNotFound when the id matches nothing.
func (r *PostRepository) Update(ctx context.Context, id string, post models.Post) (models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Post{}, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: post.Title},
		{Key: "content", Value: post.Content},
		{Key: "author", Value: post.Author},
		{Key: "imageUrl", Value: post.ImageURL},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Post
	err = r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("posts: update: %w", err)
	}
	return updated, nil
}

// Delete removes a post by id. Returns ErrNotFound when nothing matched.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("posts: delete: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
