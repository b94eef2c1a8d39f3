// Package server boots the application: configuration, logging, database,
// storage, cache, then the HTTP stack.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/meera/app/controllers"
	"github.com/shashiranjanraj/meera/app/repositories"
	"github.com/shashiranjanraj/meera/app/routes"
	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/config"
	"github.com/shashiranjanraj/meera/pkg/auth"
	"github.com/shashiranjanraj/meera/pkg/cache"
	"github.com/shashiranjanraj/meera/pkg/database"
	"github.com/shashiranjanraj/meera/pkg/logger"
	"github.com/shashiranjanraj/meera/pkg/metrics"
	"github.com/shashiranjanraj/meera/pkg/middleware"
	"github.com/shashiranjanraj/meera/pkg/reqid"
	"github.com/shashiranjanraj/meera/pkg/router"
	"github.com/shashiranjanraj/meera/pkg/storage"
)

// Start boots every component and serves until SIGINT/SIGTERM.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(context.Background()) //nolint:errcheck

	disks, err := storage.New(storage.Options{
		DefaultDisk: cfg.StorageDisk,
		LocalRoot:   cfg.UploadsRoot,
		LocalURL:    cfg.UploadsURL,
		S3: storage.S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Key:      cfg.S3Key,
			Secret:   cfg.S3Secret,
			Endpoint: cfg.S3Endpoint,
			BaseURL:  cfg.S3URL,
		},
	})
	if err != nil {
		return err
	}

	// The app runs without redis, just uncached.
	store, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warn("redis unavailable, caching disabled", "addr", cfg.RedisAddr, "error", err)
	}

	tokens := auth.NewManager(cfg.JWTSecret)
	localDisk, _ := disks.Disk("local")

	users := repositories.NewUserRepository(db)
	posts := repositories.NewPostRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)

	authService := services.NewAuthService(users, tokens, services.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	productService := services.NewProductService(products, disks.Media(), disks.MediaName(), store)
	postService := services.NewPostService(posts, localDisk, "local")
	orderService := services.NewOrderService(orders)
	cartService := services.NewCartService(users)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, routes.Controllers{
		Users:    controllers.NewUserController(authService),
		Products: controllers.NewProductController(productService, cfg.MaxBodyBytes),
		Posts:    controllers.NewPostController(postService, cfg.MaxBodyBytes),
		Orders:   controllers.NewOrderController(orderService),
		Cart:     controllers.NewCartController(cartService),
	}, tokens, cfg.UploadsRoot)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewRouter builds the full middleware and route stack around the given
// controllers, used by handler tests.
func NewRouter(c routes.Controllers, tokens *auth.Manager, uploadsDir string) *router.Router {
	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
	)
	routes.RegisterAPI(r, c, tokens, uploadsDir)
	return r
}
