package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/meera/app/models"
)

// OrderInput is the typed order placement command. The user id comes from
// the caller's token, never from the body.
type OrderInput struct {
	Items            []models.OrderItem       `json:"items" validate:"required"`
	Amount           float64                  `json:"amount" validate:"required,gt=0"`
	Address          models.Address           `json:"address" validate:"required"`
	PaymentMethod    string                   `json:"paymentMethod"`
	SpecialPackaging *models.SpecialPackaging `json:"specialPackaging,omitempty"`
}

// StatusInput is the admin status update command.
type StatusInput struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// OrderService implements order placement and the admin order workflow.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Place creates a new cash-on-delivery order for the given user.
func (s *OrderService) Place(ctx context.Context, userID string, in OrderInput) (string, error) {
	method := in.PaymentMethod
	if method == "" {
		method = "COD"
	}

	return s.orders.Create(ctx, models.Order{
		UserID:           userID,
		Items:            in.Items,
		Amount:           in.Amount,
		Address:          in.Address,
		Status:           models.StatusOrderPlaced,
		PaymentMethod:    method,
		Payment:          false,
		Date:             time.Now().UnixMilli(),
		SpecialPackaging: in.SpecialPackaging,
	})
}

// UserOrders returns the caller's orders, newest first.
func (s *OrderService) UserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// All returns every order for the admin panel, newest first.
func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.All(ctx)
}

// UpdateStatus sets the fulfilment status of one order.
func (s *OrderService) UpdateStatus(ctx context.Context, in StatusInput) error {
	return s.orders.UpdateStatus(ctx, in.OrderID, in.Status)
}
