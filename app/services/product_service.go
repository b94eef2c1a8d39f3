package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shashiranjanraj/meera/app/models"
	"github.com/shashiranjanraj/meera/pkg/cache"
	"github.com/shashiranjanraj/meera/pkg/logger"
	"github.com/shashiranjanraj/meera/pkg/metrics"
	"github.com/shashiranjanraj/meera/pkg/storage"
)

const (
	productListCacheKey = "products:list"
	productListCacheTTL = 5 * time.Minute
)

// ProductInput is the typed command decoded from the multipart add/edit
// forms. Sizes and GiftPrices arrive on the wire as JSON-string fields.
type ProductInput struct {
	Name           string    `form:"name" json:"name" validate:"required,max=255"`
	Description    string    `form:"description" json:"description"`
	Price          float64   `form:"price" json:"price" validate:"required,gt=0"`
	Discount       float64   `form:"discount" json:"discount"`
	Category       string    `form:"category" json:"category"`
	SubCategory    string    `form:"subCategory" json:"subCategory"`
	SubSubCategory string    `form:"subSubCategory" json:"subSubCategory"`
	Sizes          []string  `form:"sizes" json:"sizes"`
	Bestseller     bool      `form:"bestseller" json:"bestseller"`
	Offers         bool      `form:"offers" json:"offers"`
	GiftPackaging  bool      `form:"giftPackaging" json:"giftPackaging"`
	GiftPrices     []float64 `form:"giftPrices" json:"giftPrices"`
}

// ProductService owns the products collection and the media uploads that
// belong to it.
type ProductService struct {
	products  ProductStore
	media     storage.Disk
	mediaName string
	cache     *cache.Cache
}

func NewProductService(products ProductStore, media storage.Disk, mediaName string, c *cache.Cache) *ProductService {
	return &ProductService{products: products, media: media, mediaName: mediaName, cache: c}
}

// Add uploads all primary and gift-package images concurrently, then
// persists exactly one product document. The uploads join all-or-nothing:
// when any upload fails the whole operation aborts with ErrUploadFailed and
// nothing is persisted.
func (s *ProductService) Add(ctx context.Context, in ProductInput, images, giftImages []*multipart.FileHeader) (string, error) {
	var imageURLs, giftURLs []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		imageURLs, err = s.uploadAll(gctx, images)
		return err
	})
	g.Go(func() (err error) {
		giftURLs, err = s.uploadAll(gctx, giftImages)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	// Gift image n belongs to gift package n; images without a package are
	// dropped, matching the position-based pairing of the upload fields.
	packages := make([]models.GiftPackage, len(in.GiftPrices))
	for i, price := range in.GiftPrices {
		packages[i] = models.GiftPackage{Price: price, ImageURLs: []string{}}
	}
	for i, url := range giftURLs {
		if i < len(packages) {
			packages[i].ImageURLs = append(packages[i].ImageURLs, url)
		}
	}

	product := buildProduct(in)
	product.Images = imageURLs
	product.GiftPackages = packages
	product.Date = time.Now().UnixMilli()

	id, err := s.products.Create(ctx, product)
	if err != nil {
		return "", err
	}

	s.invalidateList(ctx)
	return id, nil
}

// Edit overwrites a product's fields; images are replaced only when new
// files were uploaded.
func (s *ProductService) Edit(ctx context.Context, id string, in ProductInput, images []*multipart.FileHeader) error {
	imageURLs, err := s.uploadAll(ctx, images)
	if err != nil {
		return err
	}

	product := buildProduct(in)
	product.Images = imageURLs

	if err := s.products.Update(ctx, id, product); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

// List returns every product, read through the cache.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if s.cache.Get(ctx, productListCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, productListCacheKey, products, productListCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("product list cache set failed", "error", err)
	}
	return products, nil
}

// Single returns one product by id.
func (s *ProductService) Single(ctx context.Context, id string) (models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Remove deletes a product by id.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateList(ctx)
	return nil
}

// uploadAll stores each file on the media disk concurrently and returns the
// durable URLs in input order. The first failure cancels the rest and fails
// the aggregate with ErrUploadFailed.
func (s *ProductService) uploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			src, err := fh.Open()
			if err != nil {
				return fmt.Errorf("%w: open %s: %s", ErrUploadFailed, fh.Filename, err)
			}
			defer src.Close()

			path := "products/" + storage.Filename(fh.Filename)
			if err := s.media.PutStream(path, src); err != nil {
				return fmt.Errorf("%w: %s: %s", ErrUploadFailed, fh.Filename, err)
			}

			metrics.ObserveUpload(s.mediaName, start)
			urls[i] = s.media.URL(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (s *ProductService) invalidateList(ctx context.Context) {
	if err := s.cache.Del(ctx, productListCacheKey); err != nil {
		logger.WithCtx(ctx).Warn("product list cache invalidation failed", "error", err)
	}
}

func buildProduct(in ProductInput) models.Product {
	discount := in.Discount
	if !in.Offers {
		// discount is only meaningful while the product is on offer
		discount = 0
	}

	sizes := in.Sizes
	if sizes == nil {
		sizes = []string{}
	}

	return models.Product{
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Discount:       discount,
		Category:       in.Category,
		SubCategory:    in.SubCategory,
		SubSubCategory: in.SubSubCategory,
		Sizes:          sizes,
		Bestseller:     in.Bestseller,
		Offers:         in.Offers,
		GiftPackaging:  in.GiftPackaging,
	}
}
