// Package routes wires every controller to its path. The route table is the
// single place where auth requirements are visible per endpoint.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/meera/app/controllers"
	"github.com/shashiranjanraj/meera/pkg/auth"
	"github.com/shashiranjanraj/meera/pkg/metrics"
	"github.com/shashiranjanraj/meera/pkg/middleware"
	"github.com/shashiranjanraj/meera/pkg/response"
	"github.com/shashiranjanraj/meera/pkg/router"
)

// Controllers bundles every resource controller for registration.
type Controllers struct {
	Users    *controllers.UserController
	Products *controllers.ProductController
	Posts    *controllers.PostController
	Orders   *controllers.OrderController
	Cart     *controllers.CartController
}

// RegisterAPI mounts the full API surface plus the health and metrics
// endpoints. uploadsDir is served statically at /uploads.
func RegisterAPI(r *router.Router, c Controllers, tokens *auth.Manager, uploadsDir string) {
	requireUser := middleware.RequireUser(tokens)
	requireAdmin := middleware.RequireAdmin(tokens)

	r.Get("/", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, "API Working", nil)
	})
	r.Get("/metrics", "", metrics.Handler().ServeHTTP)
	r.Static("/uploads", uploadsDir)

	api := r.Group("/api")

	user := api.Group("/user")
	user.Post("/register", "user.register", c.Users.Register)
	user.Post("/login", "user.login", c.Users.Login)
	user.Post("/admin", "user.admin", c.Users.AdminLogin)
	user.Get("/list", "user.list", c.Users.List, requireAdmin)

	product := api.Group("/product")
	product.Post("/add", "product.add", c.Products.Add, requireAdmin)
	product.Post("/edit", "product.edit", c.Products.Edit, requireAdmin)
	product.Post("/remove", "product.remove", c.Products.Remove, requireAdmin)
	product.Post("/single", "product.single", c.Products.Single)
	product.Get("/list", "product.list", c.Products.List)

	posts := api.Group("/posts")
	posts.Post("/", "posts.create", c.Posts.Create)
	posts.Get("/", "posts.list", c.Posts.List)
	posts.Get("/{id}", "posts.get", c.Posts.Get)
	posts.Put("/{id}", "posts.update", c.Posts.Update)
	posts.Delete("/{id}", "posts.delete", c.Posts.Delete)

	order := api.Group("/order")
	order.Post("/place", "order.place", c.Orders.Place, requireUser)
	order.Post("/userorders", "order.userorders", c.Orders.UserOrders, requireUser)
	order.Get("/list", "order.list", c.Orders.List, requireAdmin)
	order.Post("/status", "order.status", c.Orders.UpdateStatus, requireAdmin)

	cart := api.Group("/cart", requireUser)
	cart.Post("/add", "cart.add", c.Cart.Add)
	cart.Post("/update", "cart.update", c.Cart.Update)
	cart.Post("/get", "cart.get", c.Cart.Get)
}
