package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/bind"
	"github.com/shashiranjanraj/meera/pkg/response"
)

type UserController struct {
	service *services.AuthService
}

func NewUserController(service *services.AuthService) *UserController {
	return &UserController{service: service}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and returns a token.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.Register(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUser):
			response.BadRequest(w, "User already exists")
		case errors.Is(err, services.ErrInvalidEmail):
			response.BadRequest(w, "Please enter a valid email")
		case errors.Is(err, services.ErrWeakPassword):
			response.BadRequest(w, "Please enter a strong password")
		default:
			respondError(w, r, err)
		}
		return
	}

	response.Success(w, "", map[string]string{"token": token})
}

// Login authenticates by email and password.
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.BadRequest(w, "User doesn't exist")
		case errors.Is(err, services.ErrInvalidCredentials):
			response.BadRequest(w, "Invalid credentials")
		default:
			respondError(w, r, err)
		}
		return
	}

	response.Success(w, "", map[string]string{"token": token})
}

// AdminLogin authenticates against the configured admin pair.
func (c *UserController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.AdminLogin(r.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		respondError(w, r, err)
		return
	}

	response.Success(w, "", map[string]string{"token": token})
}

// List returns every registered user. Admin only; password hashes never
// serialize (json:"-" on the model).
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.Users(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "", map[string]interface{}{"users": users})
}
