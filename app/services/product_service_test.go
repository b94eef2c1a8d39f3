package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/cache"
)

func newProductService(store *fakeProductStore, disk *fakeDisk) *services.ProductService {
	return services.NewProductService(store, disk, "local", cache.Disabled())
}

func TestProductAdd(t *testing.T) {
	store := newFakeProductStore()
	disk := newFakeDisk()
	svc := newProductService(store, disk)

	in := services.ProductInput{
		Name:       "Silk Saree",
		Price:      4999,
		Sizes:      []string{"Free"},
		Offers:     true,
		Discount:   10,
		GiftPrices: []float64{199, 299},
	}
	images := uploadedFiles(t, "a.jpg", "b.jpg")
	giftImages := uploadedFiles(t, "g1.jpg", "g2.jpg")

	id, err := svc.Add(context.Background(), in, images, giftImages)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	product, err := svc.Single(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Silk Saree", product.Name)
	assert.Equal(t, 4999.0, product.Price)
	assert.Equal(t, 10.0, product.Discount)
	assert.Len(t, product.Images, 2)
	assert.NotZero(t, product.Date)

	require.Len(t, product.GiftPackages, 2)
	assert.Equal(t, 199.0, product.GiftPackages[0].Price)
	assert.Len(t, product.GiftPackages[0].ImageURLs, 1)
	assert.Equal(t, 299.0, product.GiftPackages[1].Price)

	assert.Equal(t, 4, disk.count())
}

func TestProductAddZeroesDiscountWithoutOffers(t *testing.T) {
	store := newFakeProductStore()
	svc := newProductService(store, newFakeDisk())

	in := services.ProductInput{Name: "Kurta", Price: 1299, Discount: 25, Offers: false}
	id, err := svc.Add(context.Background(), in, uploadedFiles(t, "a.jpg"), nil)
	require.NoError(t, err)

	product, err := svc.Single(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, product.Discount)
}

func TestProductAddUploadFailureIsAllOrNothing(t *testing.T) {
	store := newFakeProductStore()
	disk := newFakeDisk()
	disk.failOn = 3
	svc := newProductService(store, disk)

	in := services.ProductInput{Name: "Candle Set", Price: 899}
	images := uploadedFiles(t, "a.jpg", "b.jpg", "c.jpg", "d.jpg")

	_, err := svc.Add(context.Background(), in, images, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUploadFailed)

	assert.Zero(t, store.size(), "no document should be persisted after a failed upload")
}

func TestProductEditKeepsImagesWhenNoneUploaded(t *testing.T) {
	store := newFakeProductStore()
	svc := newProductService(store, newFakeDisk())

	id, err := svc.Add(context.Background(), services.ProductInput{Name: "Saree", Price: 100},
		uploadedFiles(t, "a.jpg"), nil)
	require.NoError(t, err)

	err = svc.Edit(context.Background(), id, services.ProductInput{Name: "Saree v2", Price: 150}, nil)
	require.NoError(t, err)

	product, err := svc.Single(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Saree v2", product.Name)
	assert.Len(t, product.Images, 1, "images stay when the edit carries no files")
}

func TestProductEditUnknownID(t *testing.T) {
	svc := newProductService(newFakeProductStore(), newFakeDisk())

	err := svc.Edit(context.Background(), "656565656565656565656565", services.ProductInput{Name: "x", Price: 1}, nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductRemove(t *testing.T) {
	store := newFakeProductStore()
	svc := newProductService(store, newFakeDisk())

	id, err := svc.Add(context.Background(), services.ProductInput{Name: "Saree", Price: 100},
		uploadedFiles(t, "a.jpg"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), id))
	assert.ErrorIs(t, svc.Remove(context.Background(), id), services.ErrNotFound)
}

func TestProductListUncachedHitsStore(t *testing.T) {
	store := newFakeProductStore()
	svc := newProductService(store, newFakeDisk())

	_, err := svc.Add(context.Background(), services.ProductInput{Name: "Saree", Price: 100},
		uploadedFiles(t, "a.jpg"), nil)
	require.NoError(t, err)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
