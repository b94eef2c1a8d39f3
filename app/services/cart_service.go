package services

import (
	"context"

	"github.com/shashiranjanraj/meera/pkg/logger"
)

// CartItemInput identifies one product/size slot in a cart.
type CartItemInput struct {
	ItemID string `json:"itemId" validate:"required"`
	Size   string `json:"size" validate:"required"`
}

// CartUpdateInput sets the absolute quantity of one cart slot.
type CartUpdateInput struct {
	ItemID   string `json:"itemId" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

// CartService manipulates the cart map embedded in the user document. Keys
// are product ids; each maps size labels to quantities.
type CartService struct {
	users UserStore
}

func NewCartService(users UserStore) *CartService {
	return &CartService{users: users}
}

// Add increments the quantity of one product/size slot by one, creating the
// slot when absent. Unknown product ids are accepted; the cart holds bare
// references, not validated product snapshots.
func (s *CartService) Add(ctx context.Context, userID string, in CartItemInput) error {
	cart, err := s.cart(ctx, userID)
	if err != nil {
		return err
	}

	if cart[in.ItemID] == nil {
		cart[in.ItemID] = map[string]int{}
	}
	cart[in.ItemID][in.Size]++

	return s.users.UpdateCart(ctx, userID, cart)
}

// Update sets the absolute quantity of one slot. A quantity of zero removes
// the slot, and the product entry too once its last size is gone.
func (s *CartService) Update(ctx context.Context, userID string, in CartUpdateInput) error {
	cart, err := s.cart(ctx, userID)
	if err != nil {
		return err
	}

	if in.Quantity == 0 {
		if sizes, ok := cart[in.ItemID]; ok {
			delete(sizes, in.Size)
			if len(sizes) == 0 {
				delete(cart, in.ItemID)
			}
		}
	} else {
		if cart[in.ItemID] == nil {
			cart[in.ItemID] = map[string]int{}
		}
		cart[in.ItemID][in.Size] = in.Quantity
	}

	return s.users.UpdateCart(ctx, userID, cart)
}

// Get returns the caller's cart map.
func (s *CartService) Get(ctx context.Context, userID string) (map[string]map[string]int, error) {
	return s.cart(ctx, userID)
}

func (s *CartService) cart(ctx context.Context, userID string) (map[string]map[string]int, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CartData == nil {
		logger.WithCtx(ctx).Debug("initializing empty cart", "user_id", userID)
		user.CartData = map[string]map[string]int{}
	}
	return user.CartData, nil
}
