package services

import (
	"context"

	"github.com/shashiranjanraj/meera/app/models"
)

// Store interfaces are defined here, on the consumer side, so controller
// tests can substitute in-memory fakes for the mongo repositories.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, user models.User) (string, error)
	All(ctx context.Context) ([]models.User, error)
	UpdateCart(ctx context.Context, id string, cart map[string]map[string]int) error
}

type PostStore interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	All(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (models.Post, error)
	Update(ctx context.Context, id string, post models.Post) (models.Post, error)
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	Create(ctx context.Context, product models.Product) (string, error)
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, id string, product models.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (string, error)
	All(ctx context.Context) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
