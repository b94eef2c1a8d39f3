package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/bind"
	"github.com/shashiranjanraj/meera/pkg/middleware"
	"github.com/shashiranjanraj/meera/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Place creates a cash-on-delivery order for the authenticated user. The
// user id always comes from the token claims, never from the body.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authorized. Login Again.")
		return
	}

	var in services.OrderInput
	if errs, err := bind.JSON(r, &in, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.service.Place(r.Context(), claims.UserID, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Order Placed", map[string]string{"id": id})
}

// UserOrders returns the authenticated user's orders, newest first.
func (c *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authorized. Login Again.")
		return
	}

	orders, err := c.service.UserOrders(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "", map[string]interface{}{"orders": orders})
}

// List returns every order for the admin panel.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.All(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "", map[string]interface{}{"orders": orders})
}

// UpdateStatus sets an order's fulfilment status. Unknown ids get a 404.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in services.StatusInput
	if errs, err := bind.JSON(r, &in, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.UpdateStatus(r.Context(), in); err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Status Updated", nil)
}
