package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/bind"
	"github.com/shashiranjanraj/meera/pkg/middleware"
	"github.com/shashiranjanraj/meera/pkg/response"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// Add increments one product/size slot in the caller's cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authorized. Login Again.")
		return
	}

	var in services.CartItemInput
	if errs, err := bind.JSON(r, &in, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Add(r.Context(), claims.UserID, in); err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Added To Cart", nil)
}

// Update sets the absolute quantity of one slot; zero removes it.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authorized. Login Again.")
		return
	}

	var in services.CartUpdateInput
	if errs, err := bind.JSON(r, &in, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Update(r.Context(), claims.UserID, in); err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Cart Updated", nil)
}

// Get returns the caller's cart map.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authorized. Login Again.")
		return
	}

	cart, err := c.service.Get(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "", map[string]interface{}{"cartData": cart})
}
