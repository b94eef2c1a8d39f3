package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/meera/app/models"
	"github.com/shashiranjanraj/meera/app/services"
)

func seedUser(t *testing.T, users *fakeUserStore) string {
	t.Helper()
	id, err := users.Create(context.Background(), models.User{
		Name:     "Asha",
		Email:    "asha@example.com",
		CartData: map[string]map[string]int{},
	})
	require.NoError(t, err)
	return id
}

func TestCartAddIncrements(t *testing.T) {
	users := newFakeUserStore()
	userID := seedUser(t, users)
	svc := services.NewCartService(users)

	item := services.CartItemInput{ItemID: "prod-1", Size: "M"}
	require.NoError(t, svc.Add(context.Background(), userID, item))
	require.NoError(t, svc.Add(context.Background(), userID, item))
	require.NoError(t, svc.Add(context.Background(), userID, services.CartItemInput{ItemID: "prod-1", Size: "L"}))

	cart, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart["prod-1"]["M"])
	assert.Equal(t, 1, cart["prod-1"]["L"])
}

func TestCartUpdateSetsAbsoluteQuantity(t *testing.T) {
	users := newFakeUserStore()
	userID := seedUser(t, users)
	svc := services.NewCartService(users)

	err := svc.Update(context.Background(), userID, services.CartUpdateInput{ItemID: "prod-1", Size: "M", Quantity: 5})
	require.NoError(t, err)

	cart, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 5, cart["prod-1"]["M"])
}

func TestCartUpdateZeroRemovesSlot(t *testing.T) {
	users := newFakeUserStore()
	userID := seedUser(t, users)
	svc := services.NewCartService(users)

	require.NoError(t, svc.Add(context.Background(), userID, services.CartItemInput{ItemID: "prod-1", Size: "M"}))
	require.NoError(t, svc.Update(context.Background(), userID, services.CartUpdateInput{ItemID: "prod-1", Size: "M", Quantity: 0}))

	cart, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	_, ok := cart["prod-1"]
	assert.False(t, ok, "empty product entries should be dropped")
}

func TestCartUnknownUser(t *testing.T) {
	svc := services.NewCartService(newFakeUserStore())

	err := svc.Add(context.Background(), "656565656565656565656565", services.CartItemInput{ItemID: "p", Size: "M"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartUnknownProductIDIsAccepted(t *testing.T) {
	users := newFakeUserStore()
	userID := seedUser(t, users)
	svc := services.NewCartService(users)

	require.NoError(t, svc.Add(context.Background(), userID, services.CartItemInput{ItemID: "does-not-exist", Size: "M"}))

	cart, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, cart["does-not-exist"]["M"])
}
