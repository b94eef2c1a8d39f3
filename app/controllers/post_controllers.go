package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/meera/app/services"
	"github.com/shashiranjanraj/meera/pkg/bind"
	"github.com/shashiranjanraj/meera/pkg/response"
)

type PostController struct {
	service  *services.PostService
	maxBytes int64
}

func NewPostController(service *services.PostService, maxBytes int64) *PostController {
	return &PostController{service: service, maxBytes: maxBytes}
}

// coverImage returns the optional "image" upload, nil when absent.
func coverImage(r *http.Request) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if fhs := r.MultipartForm.File["image"]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// Create stores a new post, optionally with a cover image, and returns the
// created document with a 201.
func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.PostInput
	if errs, err := bind.Form(r, &in, c.maxBytes); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	post, err := c.service.Create(r.Context(), in, coverImage(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Created(w, post)
}

// List returns every post.
func (c *PostController) List(w http.ResponseWriter, r *http.Request) {
	posts, err := c.service.All(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "", posts)
}

// Get returns one post by its URL id.
func (c *PostController) Get(w http.ResponseWriter, r *http.Request) {
	post, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "", post)
}

// Update overwrites a post and returns the updated document.
func (c *PostController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.PostInput
	if errs, err := bind.Form(r, &in, c.maxBytes); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	post, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), in, coverImage(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, "Post Updated", post)
}

// Delete removes a post by its URL id.
func (c *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, "Post Deleted", nil)
}
