package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/bind"
	"github.com/shashiranjanraj/meera/pkg/response"
)

// Upload field names on the add/edit forms. Each slot carries at most one
// file; absent slots are simply skipped.
var (
	productImageFields = []string{"image1", "image2", "image3", "image4"}
	giftImageFields    = []string{"giftImage1", "giftImage2", "giftImage3", "giftImage4"}
)

type ProductController struct {
	service  *services.ProductService
	maxBytes int64
}

func NewProductController(service *services.ProductService, maxBytes int64) *ProductController {
	return &ProductController{service: service, maxBytes: maxBytes}
}

// formFiles collects the first file of each named slot, in slot order.
func formFiles(r *http.Request, fields []string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, name := range fields {
		if fhs := r.MultipartForm.File[name]; len(fhs) > 0 {
			files = append(files, fhs[0])
		}
	}
	return files
}

// Add creates a product from a multipart form with up to four images and
// four gift-package images.
func (c *ProductController) Add(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.Form(r, &in, c.maxBytes); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	images := formFiles(r, productImageFields)
	if len(images) == 0 {
		response.BadRequest(w, "Name, price, and at least one image are required.")
		return
	}
	giftImages := formFiles(r, giftImageFields)

	id, err := c.service.Add(r.Context(), in, images, giftImages)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Product Added", map[string]string{"id": id})
}

// Edit updates a product from the same multipart form as Add, plus an id
// field. Images are replaced only when new files are attached.
func (c *ProductController) Edit(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if errs, err := bind.Form(r, &in, c.maxBytes); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id := r.FormValue("id")
	if id == "" {
		response.BadRequest(w, "Product id is required.")
		return
	}

	if err := c.service.Edit(r.Context(), id, in, formFiles(r, productImageFields)); err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Product Updated", nil)
}

// Remove deletes a product by id. Unknown ids get a 404, never a 500.
func (c *ProductController) Remove(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.Remove(r.Context(), body.ID); err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Product Removed", nil)
}

// Single returns one product by id.
func (c *ProductController) Single(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body, 0); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.service.Single(r.Context(), body.ProductID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "", map[string]interface{}{"product": product})
}

// List returns every product.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "", map[string]interface{}{"products": products})
}
